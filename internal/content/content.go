// Package content holds the static portfolio content served by the site:
// projects, experience, education, certifications, and skills. Like the
// knowledge base, it is authored by hand and read-only at runtime.
package content

import "github.com/gujjar-pranav/portfolio/internal/domain"

// Experience returns the experience timeline, newest first.
func Experience() []domain.Experience {
	return []domain.Experience{
		{
			Role:   "Machine Learning Engineer — Freelance",
			Period: "Aug 2025 — Present",
			Bullets: []string{
				"Built end-to-end ML pipelines (data prep → modeling → evaluation → deployment) with reproducible artifacts and clean project structure.",
				"Delivered production-style inference services (FastAPI) and interactive dashboards (Streamlit) for explainability and confidence-based decision support.",
				"Focused on training–inference parity, versioned outputs, and maintainable code (not notebook-only work).",
			},
		},
		{
			Role:    "Data Science Intern",
			Company: "Vertexblue Pvt Ltd (India)",
			Period:  "Jun 2022 — Dec 2022",
			Bullets: []string{
				"Improved forecasting accuracy by ~15% using Python/SQL predictive modeling and evaluation workflows.",
				"Supported 10%+ operational cost reduction via data-driven recommendations and insights.",
				"Reduced manual processing by ~30% by automating reporting and repeatable analytics pipelines.",
			},
		},
	}
}

// Education returns the degree entries.
func Education() []domain.Education {
	return []domain.Education{
		{
			Degree: "MSc in Data Science (Distinction)",
			School: "University of East Anglia, UK",
			Period: "Sept 2023 — Sept 2024",
			Notes: []string{
				"Focus: Machine Learning, NLP, Computer Vision, and Time Series",
				"Dissertation: Retinal vessel segmentation (U-Net / Dense U-Net)",
			},
		},
	}
}

// Certifications returns the certification groups.
func Certifications() []domain.CertGroup {
	return []domain.CertGroup{
		{
			Title: "Advanced (ML / DL)",
			Items: []string{
				"Machine Learning and Deep Learning in Python & R",
				"Intermediate Machine Learning",
			},
		},
		{
			Title: "Foundations (Core ML + Python)",
			Items: []string{
				"Machine Learning A–Z: Python & R",
				"Python for Data Science and Machine Learning Bootcamp",
				"Introduction to Machine Learning",
				"Python Programming",
			},
		},
		{
			Title: "Applied (Data / Analytics)",
			Items: []string{
				"Pandas for Data Analysis",
				"PostgreSQL Essentials",
				"Data Visualization",
				"CV Masterclass",
			},
		},
	}
}

// Skills returns the skill groups shown on the skills section.
func Skills() []domain.SkillGroup {
	return []domain.SkillGroup{
		{
			Title:    "Core",
			Subtitle: "Primary tools used across projects",
			Items:    []string{"Python", "SQL", "scikit-learn", "PyTorch", "TensorFlow", "FastAPI", "Streamlit", "Docker"},
		},
		{
			Title:    "Machine Learning",
			Subtitle: "Modeling + evaluation in real workflows",
			Items: []string{
				"Supervised/Unsupervised Learning",
				"Feature Engineering",
				"Model Evaluation (ROC-AUC, Precision/Recall)",
				"Calibration & Confidence Scoring",
				"Hyperparameter Tuning",
			},
		},
		{
			Title:    "NLP & Speech",
			Subtitle: "Text pipelines + speech-to-text",
			Items:    []string{"TF-IDF", "Linear SVM", "Text Preprocessing", "Rule-based NLP", "Speech-to-Text (Whisper)"},
		},
		{
			Title:    "Computer Vision",
			Subtitle: "Segmentation + image workflows",
			Items:    []string{"U-Net", "Image Segmentation", "Augmentation", "Dice/IoU", "Preprocessing (CLAHE)"},
		},
		{
			Title:    "Data & Analytics",
			Subtitle: "Pipelines + BI + visualization",
			Items:    []string{"pandas", "NumPy", "PostgreSQL", "MongoDB", "Matplotlib", "Plotly", "Power BI", "Tableau"},
		},
		{
			Title:    "MLOps",
			Subtitle: "Production readiness + repeatability",
			Items: []string{
				"CI/CD (GitHub Actions)",
				"Model Persistence",
				"APIs",
				"Training–Inference Parity",
				"Reproducible Pipelines",
			},
		},
	}
}
