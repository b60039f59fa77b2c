package question

import "skillscan/internal/analysis"

const defaultRole = "SDE"

// builtinTechnical is the static technical bank. Overlay files may extend
// it at runtime; the built-in data itself is never mutated.
var builtinTechnical = map[string]map[analysis.Difficulty][]Question{
	"SDE": {
		analysis.DifficultyEasy: {
			{
				Text:           "What is the difference between an array and a linked list?",
				Keywords:       []string{"array", "linked list", "memory", "access", "insertion", "contiguous", "pointer", "index"},
				ExpectedPoints: []string{"memory allocation", "access time", "insertion/deletion"},
			},
			{
				Text:           "Explain what a stack data structure is and give a real-world example.",
				Keywords:       []string{"stack", "lifo", "push", "pop", "last in first out", "undo", "recursion"},
				ExpectedPoints: []string{"LIFO principle", "operations", "use case"},
			},
			{
				Text:           "What is the purpose of version control systems like Git?",
				Keywords:       []string{"git", "version", "track", "changes", "collaborate", "branch", "merge", "history"},
				ExpectedPoints: []string{"tracking changes", "collaboration", "branching"},
			},
			{
				Text:           "What is an API and why is it important in software development?",
				Keywords:       []string{"api", "interface", "communication", "request", "response", "integration", "service"},
				ExpectedPoints: []string{"definition", "purpose", "examples"},
			},
			{
				Text:           "Explain the concept of Object-Oriented Programming.",
				Keywords:       []string{"oop", "class", "object", "inheritance", "encapsulation", "polymorphism", "abstraction"},
				ExpectedPoints: []string{"four pillars", "class/object", "benefits"},
			},
		},
		analysis.DifficultyMedium: {
			{
				Text:           "Explain the time complexity of common sorting algorithms.",
				Keywords:       []string{"sort", "complexity", "o(n)", "quick", "merge", "bubble", "heap", "time", "space"},
				ExpectedPoints: []string{"Big O notation", "comparison of algorithms", "best/worst cases"},
			},
			{
				Text:           "What is the difference between SQL and NoSQL databases? When would you use each?",
				Keywords:       []string{"sql", "nosql", "relational", "document", "schema", "scalability", "acid", "mongodb", "postgresql"},
				ExpectedPoints: []string{"structure differences", "use cases", "trade-offs"},
			},
			{
				Text:           "Explain how a hash table works and discuss collision handling.",
				Keywords:       []string{"hash", "table", "collision", "chaining", "probing", "key", "value", "bucket", "function"},
				ExpectedPoints: []string{"hashing mechanism", "collision strategies", "time complexity"},
			},
			{
				Text:           "What is REST and what makes an API RESTful?",
				Keywords:       []string{"rest", "stateless", "http", "resource", "endpoint", "get", "post", "put", "delete", "crud"},
				ExpectedPoints: []string{"REST principles", "HTTP methods", "statelessness"},
			},
			{
				Text:           "Describe the concept of recursion and when you would avoid using it.",
				Keywords:       []string{"recursion", "base case", "stack", "overflow", "iteration", "memory", "call"},
				ExpectedPoints: []string{"base case", "recursive case", "limitations"},
			},
		},
		analysis.DifficultyHard: {
			{
				Text:           "Design a URL shortening service like bit.ly. What components would you need?",
				Keywords:       []string{"database", "hash", "redirect", "scale", "cache", "encoding", "base62", "analytics", "distributed"},
				ExpectedPoints: []string{"architecture", "encoding strategy", "scalability", "storage"},
			},
			{
				Text:           "Explain how you would handle concurrency issues in a multi-threaded application.",
				Keywords:       []string{"thread", "lock", "mutex", "semaphore", "deadlock", "race condition", "synchronization", "atomic"},
				ExpectedPoints: []string{"concurrency problems", "synchronization mechanisms", "best practices"},
			},
			{
				Text:           "What are microservices and how do they differ from monolithic architecture?",
				Keywords:       []string{"microservice", "monolith", "service", "deploy", "scale", "independent", "api", "docker", "kubernetes"},
				ExpectedPoints: []string{"architectural differences", "pros/cons", "communication patterns"},
			},
			{
				Text:           "Explain CAP theorem and its implications for distributed systems.",
				Keywords:       []string{"cap", "consistency", "availability", "partition", "distributed", "trade-off", "tolerance"},
				ExpectedPoints: []string{"three properties", "trade-offs", "real-world examples"},
			},
			{
				Text:           "How would you design a rate limiter for an API?",
				Keywords:       []string{"rate", "limit", "token", "bucket", "sliding", "window", "redis", "throttle", "algorithm"},
				ExpectedPoints: []string{"algorithms", "storage", "distributed considerations"},
			},
		},
	},
	"Data Analyst": {
		analysis.DifficultyEasy: {
			{
				Text:           "What is the difference between mean, median, and mode?",
				Keywords:       []string{"mean", "median", "mode", "average", "central", "tendency", "outlier"},
				ExpectedPoints: []string{"definitions", "when to use each", "outlier impact"},
			},
			{
				Text:           "Explain what a JOIN operation does in SQL.",
				Keywords:       []string{"join", "inner", "outer", "left", "right", "table", "combine", "key"},
				ExpectedPoints: []string{"join types", "use cases", "syntax"},
			},
			{
				Text:           "What is data cleaning and why is it important?",
				Keywords:       []string{"clean", "missing", "duplicate", "outlier", "quality", "preprocessing", "null"},
				ExpectedPoints: []string{"common issues", "importance", "techniques"},
			},
		},
		analysis.DifficultyMedium: {
			{
				Text:           "Explain the concept of A/B testing and how you would design one.",
				Keywords:       []string{"ab test", "hypothesis", "control", "variant", "significance", "sample", "conversion"},
				ExpectedPoints: []string{"methodology", "statistical significance", "metrics"},
			},
			{
				Text:           "What is the difference between correlation and causation?",
				Keywords:       []string{"correlation", "causation", "relationship", "variable", "experiment", "confounding"},
				ExpectedPoints: []string{"definitions", "examples", "avoiding mistakes"},
			},
			{
				Text:           "How would you handle missing data in a dataset?",
				Keywords:       []string{"missing", "imputation", "drop", "mean", "median", "interpolation", "null"},
				ExpectedPoints: []string{"strategies", "trade-offs", "when to use each"},
			},
		},
		analysis.DifficultyHard: {
			{
				Text:           "Design a dashboard to track key business metrics. What would you include?",
				Keywords:       []string{"dashboard", "kpi", "metric", "visualization", "stakeholder", "real-time", "filter"},
				ExpectedPoints: []string{"metric selection", "visualization choices", "user needs"},
			},
			{
				Text:           "Explain how you would detect anomalies in time series data.",
				Keywords:       []string{"anomaly", "time series", "outlier", "seasonal", "trend", "statistical", "detection"},
				ExpectedPoints: []string{"methods", "considerations", "handling seasonality"},
			},
		},
	},
	"ML Engineer": {
		analysis.DifficultyEasy: {
			{
				Text:           "What is the difference between supervised and unsupervised learning?",
				Keywords:       []string{"supervised", "unsupervised", "label", "classification", "clustering", "regression"},
				ExpectedPoints: []string{"definitions", "examples", "use cases"},
			},
			{
				Text:           "Explain what overfitting is and how to prevent it.",
				Keywords:       []string{"overfit", "generalization", "regularization", "validation", "dropout", "cross-validation"},
				ExpectedPoints: []string{"definition", "detection", "prevention techniques"},
			},
			{
				Text:           "What is a training, validation, and test split?",
				Keywords:       []string{"train", "validation", "test", "split", "evaluate", "generalization"},
				ExpectedPoints: []string{"purpose of each", "typical ratios", "importance"},
			},
		},
		analysis.DifficultyMedium: {
			{
				Text:           "Explain the bias-variance tradeoff in machine learning.",
				Keywords:       []string{"bias", "variance", "tradeoff", "underfit", "overfit", "complexity", "error"},
				ExpectedPoints: []string{"definitions", "relationship", "balancing"},
			},
			{
				Text:           "What are gradient descent and its variants?",
				Keywords:       []string{"gradient", "descent", "learning rate", "sgd", "batch", "mini-batch", "adam", "optimization"},
				ExpectedPoints: []string{"algorithm", "variants", "hyperparameters"},
			},
			{
				Text:           "How do you handle imbalanced datasets in classification?",
				Keywords:       []string{"imbalance", "oversample", "undersample", "smote", "weight", "precision", "recall"},
				ExpectedPoints: []string{"techniques", "metrics", "trade-offs"},
			},
		},
		analysis.DifficultyHard: {
			{
				Text:           "Explain how transformers work and their advantage over RNNs.",
				Keywords:       []string{"transformer", "attention", "rnn", "parallel", "sequence", "encoder", "decoder", "self-attention"},
				ExpectedPoints: []string{"attention mechanism", "parallelization", "architecture"},
			},
			{
				Text:           "How would you deploy a machine learning model to production?",
				Keywords:       []string{"deploy", "api", "docker", "kubernetes", "monitoring", "inference", "latency", "scale"},
				ExpectedPoints: []string{"deployment strategies", "monitoring", "scaling"},
			},
			{
				Text:           "Explain the concept of feature importance and how to compute it.",
				Keywords:       []string{"feature", "importance", "permutation", "shap", "gain", "interpretability", "coefficient"},
				ExpectedPoints: []string{"methods", "interpretation", "limitations"},
			},
		},
	},
}

// behavioralQuestions is the HR bank. Every question expects a STAR-shaped
// answer.
var behavioralQuestions = []BehavioralQuestion{
	{
		Text:  "Tell me about a time you faced a significant challenge at work.",
		Focus: []string{"problem-solving", "resilience", "action-oriented"},
	},
	{
		Text:  "Describe a situation where you had to work with a difficult team member.",
		Focus: []string{"teamwork", "conflict resolution", "communication"},
	},
	{
		Text:  "Give an example of a time you showed leadership.",
		Focus: []string{"leadership", "initiative", "influence"},
	},
	{
		Text:  "Tell me about a time you failed and what you learned from it.",
		Focus: []string{"self-awareness", "growth mindset", "accountability"},
	},
	{
		Text:  "Describe a situation where you had to meet a tight deadline.",
		Focus: []string{"time management", "prioritization", "pressure handling"},
	},
	{
		Text:  "Tell me about a time you went above and beyond for a project.",
		Focus: []string{"initiative", "dedication", "impact"},
	},
	{
		Text:  "Describe a situation where you had to persuade others to see your point of view.",
		Focus: []string{"communication", "influence", "negotiation"},
	},
	{
		Text:  "Tell me about a time you received critical feedback.",
		Focus: []string{"receptiveness", "self-improvement", "professionalism"},
	},
}
