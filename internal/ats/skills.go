package ats

// SkillSet is the core/advanced skill split expected for one role.
type SkillSet struct {
	Core     []string `json:"coreSkills"`
	Advanced []string `json:"advancedSkills"`
}

// DefaultRole is used when a role has no registered skill set.
const DefaultRole = "SDE"

// skillSets is the role catalog. Core skills carry more weight in the
// match score than advanced ones.
var skillSets = map[string]SkillSet{
	"SDE": {
		Core: []string{
			"Data Structures",
			"Algorithms",
			"Object-Oriented Programming",
			"Version Control (Git)",
			"Problem Solving",
			"SQL",
			"REST APIs",
			"Testing & Debugging",
		},
		Advanced: []string{
			"System Design",
			"Microservices Architecture",
			"Cloud Services (AWS/GCP/Azure)",
			"CI/CD Pipelines",
			"Docker & Kubernetes",
			"Database Optimization",
			"Distributed Systems",
			"Security Best Practices",
		},
	},
	"Data Analyst": {
		Core: []string{
			"SQL",
			"Excel",
			"Python/R",
			"Data Visualization",
			"Statistical Analysis",
			"Data Cleaning",
			"Report Generation",
			"Business Intelligence Tools",
		},
		Advanced: []string{
			"Tableau/Power BI",
			"A/B Testing",
			"Predictive Analytics",
			"ETL Processes",
			"Data Warehousing",
			"Advanced Statistics",
			"Dashboard Design",
			"Stakeholder Communication",
		},
	},
	"ML Engineer": {
		Core: []string{
			"Python",
			"Machine Learning Algorithms",
			"Linear Algebra & Statistics",
			"Scikit-learn",
			"Data Preprocessing",
			"Model Evaluation",
			"SQL",
			"NumPy & Pandas",
		},
		Advanced: []string{
			"Deep Learning (TensorFlow/PyTorch)",
			"MLOps",
			"Model Deployment",
			"Feature Engineering",
			"Hyperparameter Tuning",
			"NLP/Computer Vision",
			"Distributed Training",
			"Cloud ML Services",
		},
	},
}

// skillVariations maps canonical skill names to common abbreviations and
// spellings seen in resumes.
var skillVariations = map[string][]string{
	"Data Structures":                  {"data structure", "ds", "dsa"},
	"Algorithms":                       {"algorithm", "algo"},
	"Object-Oriented Programming":      {"oop", "object oriented", "oops"},
	"Version Control (Git)":            {"git", "github", "gitlab", "version control"},
	"SQL":                              {"mysql", "postgresql", "postgres", "sqlite", "sql server"},
	"REST APIs":                        {"rest", "restful", "api", "apis"},
	"Testing & Debugging":              {"testing", "debugging", "unit test", "pytest", "jest"},
	"System Design":                    {"system design", "architecture", "hld", "lld"},
	"Microservices Architecture":       {"microservices", "micro-services", "microservice"},
	"Cloud Services (AWS/GCP/Azure)":   {"aws", "gcp", "azure", "cloud", "ec2", "s3"},
	"CI/CD Pipelines":                  {"ci/cd", "cicd", "jenkins", "github actions", "gitlab ci"},
	"Docker & Kubernetes":              {"docker", "kubernetes", "k8s", "container"},
	"Python/R":                         {"python", "r programming", "r language"},
	"Data Visualization":               {"visualization", "charts", "graphs", "matplotlib", "seaborn"},
	"Excel":                            {"excel", "spreadsheet", "xlsx"},
	"Tableau/Power BI":                 {"tableau", "power bi", "powerbi"},
	"Machine Learning Algorithms":      {"machine learning", "ml", "supervised", "unsupervised"},
	"Deep Learning (TensorFlow/PyTorch)": {"tensorflow", "pytorch", "keras", "deep learning", "neural network"},
	"NumPy & Pandas":                   {"numpy", "pandas", "np", "pd"},
	"Scikit-learn":                     {"sklearn", "scikit", "scikit-learn"},
	"NLP/Computer Vision":              {"nlp", "natural language", "computer vision", "cv", "opencv"},
	"MLOps":                            {"mlops", "ml ops", "mlflow", "kubeflow"},
}

// rolePriorities weighs missing skills when building a learning order.
// Unlisted skills default to weight 5 for core and 3 for advanced.
var rolePriorities = map[string]map[string]int{
	"SDE": {
		"Data Structures":             10,
		"Algorithms":                  10,
		"Object-Oriented Programming": 9,
		"Problem Solving":             9,
		"Version Control (Git)":       8,
		"SQL":                         7,
		"REST APIs":                   7,
		"System Design":               8,
		"Docker & Kubernetes":         6,
	},
	"Data Analyst": {
		"SQL":                  10,
		"Excel":                9,
		"Python/R":             9,
		"Data Visualization":   8,
		"Statistical Analysis": 8,
		"Tableau/Power BI":     7,
		"Data Cleaning":        7,
	},
	"ML Engineer": {
		"Python":                      10,
		"Machine Learning Algorithms": 10,
		"Linear Algebra & Statistics": 9,
		"Scikit-learn":                8,
		"Deep Learning (TensorFlow/PyTorch)": 8,
		"Data Preprocessing":          7,
		"Model Deployment":            7,
	},
}

// SkillsForRole returns the skill set for a role, falling back to the
// default role when unknown.
func SkillsForRole(role string) SkillSet {
	if s, ok := skillSets[role]; ok {
		return s
	}
	return skillSets[DefaultRole]
}

// Roles lists the registered role names in a stable order.
func Roles() []string {
	return []string{"SDE", "Data Analyst", "ML Engineer"}
}

// KnownRole reports whether the role has its own skill set.
func KnownRole(role string) bool {
	_, ok := skillSets[role]
	return ok
}
