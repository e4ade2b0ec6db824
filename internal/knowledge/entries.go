package knowledge

import "github.com/gujjar-pranav/portfolio/internal/domain"

// DefaultLinks returns the site owner's static profile and contact URLs.
func DefaultLinks() *domain.Links {
	return &domain.Links{
		GitHubProfile:   "https://github.com/Gujjar-Pranav",
		LinkedIn:        "https://www.linkedin.com/in/pranav-b-gujjar",
		ResumePDF:       "/Pranav_Gujjar_CV.pdf",
		ResumeFilename:  "Pranav_Gujjar_CV.pdf",
		WhatsApp:        "https://wa.me/919008913366",
		Phone:           "tel:+919008913366",
		Email:           "mailto:mr.pranavgujjar@gmail.com",
		LinkedInCerts:   "https://www.linkedin.com/in/pranav-b-gujjar/details/certifications/",
		GitHubCertsRepo: "https://github.com/Gujjar-Pranav/Data-Science-Traning-Certificates",
	}
}

// Project links used only in project-specific answers.
const (
	strategicIntelRepo = "https://github.com/Gujjar-Pranav/strategic-intelligence-stack"
	strategicIntelDemo = "https://strategic-intelligence-stack.vercel.app"
	strategicIntelDocs = "https://strategic-intelligence-stack.onrender.com/docs"
	reviewSenseRepo    = "https://github.com/Gujjar-Pranav/review-sense-ai"
	reviewSenseDemo    = "https://review-sense-ai-mvvd48vdsasmys7ecjenpa.streamlit.app/"
	glassRepo          = "https://github.com/Gujjar-Pranav/Glass_Identification"
	diabetesRepo       = "https://github.com/Gujjar-Pranav/Diabetes_Prediction_App"
	diabetesDemo       = "https://diabetespredictionapp-ffcfgbmn3xxxe9ah7dl3rw.streamlit.app/"
	meetingRepo        = "https://github.com/Gujjar-Pranav/Meeting_task_assignment"
)

// Default returns the compiled-in knowledge base.
func Default() *Base {
	links := DefaultLinks()
	return MustNew(links, DefaultEntries(links))
}

// DefaultEntries returns the hand-authored knowledge entries. Keyword lists
// deliberately include common misspellings ("eduction", "diabatic") so the
// fuzzy matcher tolerates real user typos.
func DefaultEntries(links *domain.Links) []*domain.Entry {
	return []*domain.Entry{
		{
			ID:       "about",
			Title:    "About",
			Keywords: []string{"about", "summary", "profile", "who is pranav", "who are you", "tell me about", "bio", "introduction"},
			Answer: "Pranav Gujjar is a Machine Learning Engineer / Data Scientist (MSc Data Science, Distinction) " +
				"building production-ready ML systems end-to-end: data → modeling → evaluation → deployment. " +
				"Strong in explainability, confidence/risk scoring, and deployment using FastAPI, Streamlit, Docker, and CI/CD.",
		},
		{
			ID:       "whyhire",
			Title:    "Why hire",
			Keywords: []string{"why hire", "hire", "why should we hire", "strength", "strengths", "why pranav", "value", "fit"},
			Answer: "Why hire Pranav:\n" +
				"- Production-ready delivery: APIs + dashboards + persisted artifacts\n" +
				"- Reliable ML: calibration, confidence scoring, risk routing, human-in-the-loop\n" +
				"- Measurable ROI: forecasting gains, cost reduction, automation improvements\n" +
				"- Engineering mindset: reproducibility, training–inference parity, CI checks",
		},
		{
			ID:       "experience",
			Title:    "Experience",
			Keywords: []string{"experience", "exp", "work", "intern", "internship", "freelance", "career", "job"},
			Answer: "Experience:\n" +
				"- ML Engineer — Freelance (Aug 2025 – Present): end-to-end ML pipelines, FastAPI inference, Streamlit dashboards, reproducible artifacts.\n" +
				"- Data Science Intern — Vertexblue (Jun 2022 – Dec 2022): ~15% forecasting improvement, 10%+ cost reduction support, ~30% automation gain.",
		},
		{
			ID:       "achievements",
			Title:    "Achievements / ROI",
			Keywords: []string{"achievement", "achievements", "roi", "impact", "metrics", "results", "numbers", "forecasting", "cost reduction", "automation"},
			Answer: "Achievements / ROI:\n" +
				"- ~15% forecasting improvement\n" +
				"- 10%+ operational cost reduction contribution\n" +
				"- ~30% reduction in manual processing via automation\n" +
				"- Production ML systems: FastAPI + Streamlit + Docker + CI/CD",
		},
		{
			ID:    "education",
			Title: "Education",
			Keywords: []string{
				"education", "educa", "edcation", "eduction", "study", "studies", "degree",
				"msc", "master", "university", "uea", "east anglia", "dissertation",
			},
			Answer: "Education:\n" +
				"- MSc in Data Science (Distinction) — University of East Anglia, UK (Sept 2023 – Sept 2024)\n" +
				"  • Focus: Machine Learning, NLP, Computer Vision, Time Series\n" +
				"  • Dissertation: Retinal vessel segmentation (U-Net / Dense U-Net)",
		},
		{
			ID:    "certifications",
			Title: "Certifications",
			Keywords: []string{
				"certification", "certifications", "certi", "certificate", "certificates", "courses",
				"training", "course", "upskilling", "linkedin certifications", "github certificates",
			},
			Answer: "Certifications & Courses:\n" +
				"- LinkedIn certifications: " + links.LinkedInCerts + "\n" +
				"- GitHub certificates repo: " + links.GitHubCertsRepo + "\n\n" +
				"Examples (high-level):\n" +
				"- Machine Learning & Deep Learning (Python & R)\n" +
				"- Intermediate Machine Learning\n" +
				"- Machine Learning A–Z\n" +
				"- Python for Data Science & ML\n" +
				"- PostgreSQL Essentials\n" +
				"- Data Visualization",
		},
		{
			ID:    "links",
			Title: "Links",
			Keywords: []string{
				"links", "link", "link details", "all links", "profiles", "social",
				"github link", "linkedin link", "resume link", "cv link", "certifications link", "certificate link",
			},
			Answer: "Links:\n" +
				"- GitHub: " + links.GitHubProfile + "\n" +
				"- LinkedIn: " + links.LinkedIn + "\n" +
				"- Download CV: [" + links.ResumeFilename + "](" + links.ResumePDF + ")\n" +
				"- WhatsApp: " + links.WhatsApp + "\n" +
				"- Call: " + links.Phone + "\n" +
				"- Email: " + links.Email + "\n" +
				"- LinkedIn Certifications: " + links.LinkedInCerts + "\n" +
				"- GitHub Certificates Repo: " + links.GitHubCertsRepo,
		},
		{
			ID:       "contact",
			Title:    "Contact",
			Keywords: []string{"contact", "email", "phone", "call", "whatsapp", "reach", "message"},
			Answer: "Contact Pranav:\n" +
				"- Email: " + links.Email + "\n" +
				"- WhatsApp: " + links.WhatsApp + "\n" +
				"- Call: " + links.Phone + "\n" +
				"- Location: Bangalore, India (open to relocation & remote)",
		},
		{
			ID:       "skills",
			Title:    "Skills",
			Keywords: []string{"skills", "skill", "stack", "tech", "mlops", "deployment", "ats", "tools"},
			Answer: "Key skills:\n" +
				"- Languages: Python, SQL\n" +
				"- ML: classification/regression/clustering, feature engineering, evaluation (ROC-AUC, Precision/Recall, F1)\n" +
				"- DL: TensorFlow, PyTorch\n" +
				"- NLP/Speech: TF-IDF, Linear SVM, rule-based NLP, Whisper ASR\n" +
				"- Deployment/MLOps: FastAPI, Streamlit, Docker, CI/CD (GitHub Actions), model persistence\n" +
				"- Full-stack (project work): Next.js, REST APIs, Swagger, Vercel/Render deployments",
		},
		{
			ID:       "projects",
			Title:    "Projects",
			Keywords: []string{"projects", "project", "portfolio", "work samples", "case studies", "project list"},
			Answer: "Projects (quick list):\n" +
				"- Strategic Intelligence Stack — production-grade customer segmentation + decision intelligence\n" +
				"- ReviewSense AI — sentiment + calibrated confidence/risk routing (GitHub + demo)\n" +
				"- Glass Identification — stacking ensemble + FastAPI + Docker + CI/CD\n" +
				"- Diabetes Prediction App — probability + risk level + PDF/Excel workflow (GitHub + demo)\n" +
				"- Meeting Task Assignment — offline Whisper STT → tasks JSON\n\n" +
				"Ask any project name (e.g., \"Strategic Intelligence Stack\") for full details + links.",
		},
		{
			ID:    "strategic-intelligence",
			Title: "Strategic Intelligence Stack",
			Keywords: []string{
				"strategic intelligence", "strategic intelligence stack", "segmentation", "customer segmentation",
				"decision intelligence", "clustering", "run management", "simulation", "scenario simulation",
				"fastapi", "nextjs", "vercel", "render", "swagger", "api docs",
			},
			Link: strategicIntelRepo,
			Demo: strategicIntelDemo,
			Answer: "Strategic Intelligence Stack:\n" +
				"- Production-grade customer segmentation + decision intelligence system\n" +
				"- Deterministic segmentation runs with persisted artifacts (run_id)\n" +
				"- Segment personas + KPI insights (revenue share, promo responsiveness, discount risk, channel mix)\n" +
				"- Scenario simulations on persisted runs (no retraining)\n" +
				"- FastAPI backend + Swagger API docs; Next.js executive-ready dashboard\n\n" +
				"GitHub: " + strategicIntelRepo + "\n" +
				"Live App: " + strategicIntelDemo + "\n" +
				"API Docs (Swagger): " + strategicIntelDocs,
		},
		{
			ID:       "reviewsense",
			Title:    "ReviewSense AI",
			Keywords: []string{"reviewsense", "review sense", "review-sense", "sentiment dashboard", "confidence", "calibration", "risk routing"},
			Link:     reviewSenseRepo,
			Demo:     reviewSenseDemo,
			Answer: "ReviewSense AI:\n" +
				"- TF-IDF + Linear SVM + probability calibration\n" +
				"- Confidence & risk scoring for auto-approve vs human review\n" +
				"- Tricky review detection (negation, mixed sentiment)\n" +
				"- Streamlit dashboard with insights\n\n" +
				"GitHub: " + reviewSenseRepo + "\n" +
				"Demo: " + reviewSenseDemo,
		},
		{
			ID:       "glass",
			Title:    "Glass Identification",
			Keywords: []string{"glass", "glass identification", "stacking", "smote", "fastapi", "docker", "cicd", "glass_identification"},
			Link:     glassRepo,
			Answer: "Glass Identification:\n" +
				"- Stacking ensemble + SMOTE (imbalance handling)\n" +
				"- FastAPI backend + Streamlit UI\n" +
				"- Docker / Compose + CI/CD automation\n\n" +
				"GitHub: " + glassRepo,
		},
		{
			ID:    "diabetes",
			Title: "Diabetes Prediction App",
			Keywords: []string{
				"diabetes", "diabetic", "diabatic", "doiabativs", "diabetes app", "diabetes prediction",
				"logistic regression", "pdf report", "excel export", "patient history", "diabetes_prediction_app",
			},
			Link: diabetesRepo,
			Demo: diabetesDemo,
			Answer: "Diabetes Prediction App:\n" +
				"- Logistic Regression + StandardScaler\n" +
				"- Probability output + risk levels (Low/Med/High)\n" +
				"- PDF report + patient history + Excel export\n\n" +
				"GitHub: " + diabetesRepo + "\n" +
				"Demo: " + diabetesDemo,
		},
		{
			ID:       "meeting",
			Title:    "Meeting Task Assignment",
			Keywords: []string{"meeting", "whisper", "audio", "task assignment", "stt", "asr", "json tasks", "meeting_task_assignment"},
			Link:     meetingRepo,
			Answer: "Meeting Task Assignment:\n" +
				"- Offline Whisper speech-to-text + rule-based NLP\n" +
				"- Meeting audio → transcript → tasks_output.json\n" +
				"- Fully local (no cloud)\n\n" +
				"GitHub: " + meetingRepo,
		},
	}
}
