package content

import "github.com/gujjar-pranav/portfolio/internal/domain"

// Projects returns the portfolio project cards in display order.
func Projects() []domain.Project {
	return []domain.Project{
		{
			Title: "Strategic Intelligence Stack",
			Description: "Production-grade customer segmentation and decision intelligence platform: deterministic clustering runs, " +
				"segment personas and KPI insights, and scenario simulations without retraining — delivered via FastAPI APIs and an " +
				"executive-ready Next.js dashboard.",
			Tags: []string{
				"Next.js", "FastAPI", "Customer Segmentation", "Clustering", "Run Management",
				"Simulation Engine", "REST APIs", "Swagger", "Vercel", "Render",
			},
			Links: domain.ProjectLinks{
				Code: "https://github.com/Gujjar-Pranav/strategic-intelligence-stack",
				Demo: "https://strategic-intelligence-stack.vercel.app",
				Docs: "https://strategic-intelligence-stack.onrender.com/docs",
			},
			CoverImage: "/projects/strategic-intelligence_1.png",
			Screenshots: []string{
				"/projects/strategic-intelligence_1.png",
				"/projects/strategic-intelligence_2.png",
				"/projects/strategic-intelligence_3.png",
				"/projects/strategic-intelligence_4.png",
			},
			Highlights: []string{
				"Deterministic, reproducible segmentation runs (run ID + persisted artifacts)",
				"Decision-oriented insights: revenue share, promo responsiveness, discount-risk, channel mix",
				"Scenario simulations operate on persisted runs (no retraining required)",
				"Executive-first UI with print-optimized exports",
			},
			Architecture: []string{
				"Dataset ingestion → validation + normalization → clustering pipeline",
				"Cluster analytics + persona generation → persisted run artifacts (run_id)",
				"Simulation engine applies business-rule transformations on persisted results",
				"Next.js frontend consumes run data via REST APIs → dashboards + exports",
			},
		},
		{
			Title: "ReviewSense AI",
			Description: "Trust-aware review intelligence dashboard: sentiment + calibrated confidence, risk routing, " +
				"tricky-review detection, and executive insights in Streamlit.",
			Tags: []string{
				"Python", "NLP", "TF-IDF", "Linear SVM", "Model Calibration",
				"Streamlit", "Plotly", "scikit-learn", "Responsible AI",
			},
			Links: domain.ProjectLinks{
				Code: "https://github.com/Gujjar-Pranav/review-sense-ai",
				Demo: "https://review-sense-ai-mvvd48vdsasmys7ecjenpa.streamlit.app/",
			},
			CoverImage: "/projects/review-sense-ai_1.png",
			Screenshots: []string{
				"/projects/review-sense-ai_1.png",
				"/projects/review-sense-ai_2.png",
				"/projects/review-sense-ai_3.png",
				"/projects/review-sense-ai_4.png",
			},
			Highlights: []string{
				"Confidence + risk scoring to route auto-approve vs manual review",
				"Detection of tricky reviews (negation, mixed sentiment, vague wording)",
				"Executive insights + explainability dashboards",
				"CI quality gates and artifact validation",
			},
			Architecture: []string{
				"Raw reviews → preprocessing → TF-IDF feature extraction",
				"Model training + benchmarking → best model selection",
				"Probability calibration → confidence scoring",
				"Risk routing → auto-approve vs manual review",
				"Reports (misclassifications, comparisons) → Streamlit dashboard",
			},
		},
		{
			Title: "Diabetes Prediction App",
			Description: "End-to-end diabetes risk prediction with probability output, Low/Medium/High risk stratification, " +
				"patient history, Excel export, and PDF report generation.",
			Tags: []string{"Python", "Logistic Regression", "Streamlit", "scikit-learn", "StandardScaler", "PDF", "Excel Export"},
			Links: domain.ProjectLinks{
				Code: "https://github.com/Gujjar-Pranav/Diabetes_Prediction_App",
				Demo: "https://diabetespredictionapp-ffcfgbmn3xxxe9ah7dl3rw.streamlit.app/",
			},
			CoverImage: "/projects/diabetic_1.png",
			Screenshots: []string{
				"/projects/diabetic_1.png",
				"/projects/diabetic_2.png",
				"/projects/diabetic_3.png",
				"/projects/diabetic_4.png",
			},
			Highlights: []string{
				"Risk level + probability output for decision support",
				"PDF reports with patient ID + QR + timestamp",
				"Patient history tracking + Excel export",
				"Automated ML pipeline (EDA → train → evaluate → app)",
			},
			Architecture: []string{
				"Dataset → preprocessing → scaling (StandardScaler)",
				"Train Logistic Regression → evaluation + metrics",
				"Persist model + scaler → app inference",
				"Streamlit UI → prediction + PDF report + patient history export",
			},
		},
		{
			Title: "Retina-AI",
			Description: "Clinical diabetic retinopathy screening MVP: patient & clinician registry → fundus upload → DR/No-DR " +
				"inference with confidence + image-quality gates → risk stratification → Grad-CAM explainability → one-page " +
				"clinical PDF reports, secured with role-based authentication.",
			Tags: []string{
				"Python", "Streamlit", "PyTorch", "Grad-CAM", "OpenCV/Pillow", "Risk Stratification",
				"ReportLab", "Ruff", "GitHub Actions", "Clinical Workflow",
			},
			Links: domain.ProjectLinks{
				Code: "https://github.com/Gujjar-Pranav/retina-ai",
				Demo: "https://retina-ai-zpkddbsb6m2rf6tfgd6rjh.streamlit.app",
			},
			CoverImage: "/projects/retina-ai_1.png",
			Screenshots: []string{
				"/projects/retina-ai_1.png",
				"/projects/retina-ai_2.png",
				"/projects/retina-ai_3.png",
				"/projects/retina-ai_4.png",
			},
			Highlights: []string{
				"End-to-end screening workflow: Registry → Screening → Risk → Explainability → Reporting",
				"PyTorch inference with confidence + image quality gating",
				"Grad-CAM explainability embedded into clinical PDF reports",
				"Role-based access control (Admin / Registry / Screening / Reports)",
				"CI/CD via GitHub Actions (Ruff linting + import smoke tests)",
			},
			Architecture: []string{
				"Streamlit UI → Auth + Roles → Registry / Screening / Reports tabs",
				"Fundus upload → PyTorch model inference (DR/No-DR) + confidence scoring",
				"Quality gates + risk stratification + clinical recommendations",
				"Grad-CAM generation → PDF builder (ReportLab) → reports/*.pdf",
			},
		},
		{
			Title: "Glass Identification",
			Description: "Production-style ML system: stacking ensemble + reproducible inference pipeline, FastAPI backend, " +
				"Streamlit UI, Docker Compose, and CI/CD automation.",
			Tags:  []string{"Python", "Ensembles", "Stacking", "SMOTE", "FastAPI", "Streamlit", "Docker", "GitHub Actions"},
			Links: domain.ProjectLinks{Code: "https://github.com/Gujjar-Pranav/Glass_Identification"},
			CoverImage: "/projects/glass_indetification_1.png",
			Screenshots: []string{
				"/projects/glass_indetification_1.png",
				"/projects/glass_indetification_2.png",
				"/projects/glass_indetification_3.png",
				"/projects/glass_indetification_4.png",
			},
			Highlights: []string{
				"Advanced feature engineering + imbalance handling",
				"Stacking ensemble selected over tuned baselines",
				"FastAPI inference service with trained artifacts",
				"Dockerized services with CI builds",
			},
			Architecture: []string{
				"UCI data → cleaning → outlier handling → features",
				"Scaling + stratified split + SMOTE → training/eval",
				"Persist model + scaler + schema artifacts",
				"FastAPI /predict endpoint → Streamlit UI calls API",
			},
		},
		{
			Title: "Meeting Task Assignment",
			Description: "Local-only pipeline that turns meeting audio into structured task JSON using offline Whisper " +
				"speech-to-text + rule-based NLP (no cloud/APIs).",
			Tags:        []string{"Python", "Whisper", "NLP", "Automation", "Offline", "JSON"},
			Links:       domain.ProjectLinks{Code: "https://github.com/Gujjar-Pranav/Meeting_task_assignment"},
			CoverImage:  "/projects/task_identification_output.png",
			Screenshots: []string{"/projects/task_identification_output.png"},
			Highlights: []string{
				"Audio (.m4a) → transcript → task candidates → JSON output",
				"Team-member aware assignment logic via skills mapping",
				"Runs fully locally with ffmpeg + Whisper",
			},
			Architecture: []string{
				"Meeting audio → Whisper STT → transcript.txt",
				"Sentence splitting → rule-based task identification",
				"Feature extraction → task objects → tasks_output.json",
			},
		},
	}
}
