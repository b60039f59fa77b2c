package question

import "skillscan/internal/analysis"

var companyModes = map[string]Mode{
	"google": {
		Key:         "google",
		Name:        "Google",
		Tagline:     "Think Big, Code Smart",
		Style:       "dsa_heavy",
		Description: "Heavy focus on Data Structures & Algorithms, optimization, and scalability",
		FocusAreas:  []string{"DSA", "Problem Solving", "System Design", "Googleyness"},
		Distribution: []TypeWeight{
			{Type: "dsa", Weight: 0.50},
			{Type: "system_design", Weight: 0.20},
			{Type: "behavioral", Weight: 0.15},
			{Type: "coding", Weight: 0.15},
		},
		Rounds: []Round{
			{Name: "Phone Screen", Type: "coding", Duration: 45},
			{Name: "Onsite 1", Type: "dsa", Duration: 45},
			{Name: "Onsite 2", Type: "dsa", Duration: 45},
			{Name: "System Design", Type: "system_design", Duration: 45},
			{Name: "Googleyness & Leadership", Type: "behavioral", Duration: 45},
		},
		Tips: []string{
			"Think out loud and communicate your approach clearly",
			"Always analyze time and space complexity",
			"Consider edge cases before coding",
			"Optimize your solution iteratively",
			"Show enthusiasm for Google's products and mission",
		},
	},
	"amazon": {
		Key:         "amazon",
		Name:        "Amazon",
		Tagline:     "Leadership Principles First",
		Style:       "leadership_behavioral",
		Description: "Strong emphasis on Amazon's 16 Leadership Principles with STAR method responses",
		FocusAreas:  []string{"Leadership Principles", "Behavioral", "System Design", "Coding"},
		Distribution: []TypeWeight{
			{Type: "behavioral", Weight: 0.45},
			{Type: "coding", Weight: 0.25},
			{Type: "system_design", Weight: 0.20},
			{Type: "dsa", Weight: 0.10},
		},
		Rounds: []Round{
			{Name: "Phone Screen", Type: "coding", Duration: 45},
			{Name: "Loop 1 - LP Deep Dive", Type: "behavioral", Duration: 60},
			{Name: "Loop 2 - Technical", Type: "coding", Duration: 60},
			{Name: "Loop 3 - System Design", Type: "system_design", Duration: 60},
			{Name: "Bar Raiser", Type: "behavioral", Duration: 60},
		},
		LeadershipPrinciples: []string{
			"Customer Obsession",
			"Ownership",
			"Invent and Simplify",
			"Are Right, A Lot",
			"Learn and Be Curious",
			"Hire and Develop the Best",
			"Insist on the Highest Standards",
			"Think Big",
			"Bias for Action",
			"Frugality",
			"Earn Trust",
			"Dive Deep",
			"Have Backbone; Disagree and Commit",
			"Deliver Results",
			"Strive to be Earth's Best Employer",
			"Success and Scale Bring Broad Responsibility",
		},
		Tips: []string{
			"Prepare 2-3 stories for each Leadership Principle",
			"Use the STAR method (Situation, Task, Action, Result)",
			"Quantify your impact with metrics",
			"Show ownership and customer focus",
			"Be specific, not generic in your responses",
		},
	},
	"meta": {
		Key:         "meta",
		Name:        "Meta",
		Tagline:     "Move Fast, Build Things",
		Style:       "coding_systems",
		Description: "Balance of coding excellence and system design with focus on scale",
		FocusAreas:  []string{"Coding", "System Design", "Product Sense", "Behavioral"},
		Distribution: []TypeWeight{
			{Type: "coding", Weight: 0.40},
			{Type: "system_design", Weight: 0.30},
			{Type: "behavioral", Weight: 0.15},
			{Type: "dsa", Weight: 0.15},
		},
		Rounds: []Round{
			{Name: "Initial Screen", Type: "coding", Duration: 45},
			{Name: "Coding 1", Type: "coding", Duration: 45},
			{Name: "Coding 2", Type: "coding", Duration: 45},
			{Name: "System Design", Type: "system_design", Duration: 45},
			{Name: "Behavioral", Type: "behavioral", Duration: 45},
		},
		Tips: []string{
			"Write clean, production-ready code",
			"Think about edge cases and error handling",
			"Design for Meta's scale (billions of users)",
			"Show product intuition and user empathy",
			"Demonstrate ability to iterate quickly",
		},
	},
	"microsoft": {
		Key:         "microsoft",
		Name:        "Microsoft",
		Tagline:     "Empower Every Person",
		Style:       "balanced",
		Description: "Balanced approach with focus on growth mindset and collaboration",
		FocusAreas:  []string{"Coding", "System Design", "Problem Solving", "Growth Mindset"},
		Distribution: []TypeWeight{
			{Type: "coding", Weight: 0.35},
			{Type: "system_design", Weight: 0.25},
			{Type: "behavioral", Weight: 0.25},
			{Type: "dsa", Weight: 0.15},
		},
		Rounds: []Round{
			{Name: "Phone Screen", Type: "coding", Duration: 45},
			{Name: "Onsite 1", Type: "coding", Duration: 60},
			{Name: "Onsite 2", Type: "system_design", Duration: 60},
			{Name: "Onsite 3", Type: "behavioral", Duration: 60},
			{Name: "As Appropriate (AA)", Type: "behavioral", Duration: 30},
		},
		Tips: []string{
			"Show growth mindset and learning attitude",
			"Demonstrate collaboration skills",
			"Explain your thought process clearly",
			"Ask clarifying questions",
			"Show passion for technology and impact",
		},
	},
	"apple": {
		Key:         "apple",
		Name:        "Apple",
		Tagline:     "Think Different",
		Style:       "technical_detail",
		Description: "Deep technical expertise with focus on quality and user experience",
		FocusAreas:  []string{"Technical Excellence", "Design Thinking", "Attention to Detail", "Innovation"},
		Distribution: []TypeWeight{
			{Type: "coding", Weight: 0.35},
			{Type: "system_design", Weight: 0.25},
			{Type: "behavioral", Weight: 0.20},
			{Type: "dsa", Weight: 0.20},
		},
		Rounds: []Round{
			{Name: "Phone Screen", Type: "coding", Duration: 45},
			{Name: "Technical 1", Type: "coding", Duration: 60},
			{Name: "Technical 2", Type: "system_design", Duration: 60},
			{Name: "Design Review", Type: "behavioral", Duration: 60},
			{Name: "Hiring Manager", Type: "behavioral", Duration: 45},
		},
		Tips: []string{
			"Pay attention to code quality and elegance",
			"Think about user experience implications",
			"Show passion for Apple products",
			"Demonstrate attention to detail",
			"Be prepared for deep technical discussions",
		},
	},
	"generic": {
		Key:         "generic",
		Name:        "General Practice",
		Tagline:     "All-Round Preparation",
		Style:       "balanced",
		Description: "Balanced preparation covering all major interview topics",
		FocusAreas:  []string{"DSA", "System Design", "Behavioral", "Coding"},
		Distribution: []TypeWeight{
			{Type: "dsa", Weight: 0.30},
			{Type: "coding", Weight: 0.25},
			{Type: "system_design", Weight: 0.25},
			{Type: "behavioral", Weight: 0.20},
		},
		Rounds: []Round{
			{Name: "Technical Screen", Type: "coding", Duration: 45},
			{Name: "Technical Round", Type: "dsa", Duration: 45},
			{Name: "System Design", Type: "system_design", Duration: 45},
			{Name: "Behavioral", Type: "behavioral", Duration: 45},
		},
		Tips: []string{
			"Practice a variety of problem types",
			"Prepare behavioral stories using STAR method",
			"Study common system design patterns",
			"Work on communication skills",
			"Review fundamentals regularly",
		},
	},
}

// companyQuestions holds the dedicated banks. Companies without a bank for
// a drawn question type fall back to the standard technical bank.
var companyQuestions = map[string]map[string][]companyEntry{
	"google": {
		"dsa": {
			{
				Text:       "Given an array of integers, find two numbers that add up to a specific target. Optimize for time complexity.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"arrays", "hash_tables", "optimization"},
				FollowUp:   "What if the array is sorted? Can you do better than O(n) space?",
			},
			{
				Text:       "Design an algorithm to find the kth largest element in an unsorted array. What's the most efficient approach?",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"heaps", "quickselect", "sorting"},
				FollowUp:   "How would you handle streaming data?",
			},
			{
				Text:       "Given a binary tree, return the level order traversal of its nodes' values. Then modify it to return zigzag order.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"trees", "bfs", "queues"},
				FollowUp:   "What about a very wide tree that doesn't fit in memory?",
			},
			{
				Text:       "Implement a trie (prefix tree) with insert, search, and startsWith methods. Analyze the complexity.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"tries", "strings", "trees"},
				FollowUp:   "How would you implement autocomplete using this?",
			},
			{
				Text:       "Find the longest substring without repeating characters. Optimize your solution step by step.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"strings", "sliding_window", "hash_tables"},
				FollowUp:   "What if we need the longest substring with at most k distinct characters?",
			},
		},
		"system_design": {
			{
				Text:       "Design Google Search's autocomplete system. Consider latency, scale, and personalization.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"distributed_systems", "caching", "trie"},
			},
			{
				Text:       "Design YouTube's video recommendation system. How would you handle billions of videos?",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"ml_systems", "distributed_systems", "caching"},
			},
			{
				Text:       "Design Google Maps navigation system. Consider real-time traffic and route optimization.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"graphs", "real_time", "geospatial"},
			},
		},
		"behavioral": {
			{
				Text:      "Tell me about a time you had to make a decision with incomplete information. How did you handle it?",
				Principle: "Googleyness",
			},
			{
				Text:      "Describe a situation where you had to push back on a decision you disagreed with.",
				Principle: "Googleyness",
			},
			{
				Text:      "Tell me about a complex technical problem you solved. Walk me through your approach.",
				Principle: "Problem Solving",
			},
		},
	},
	"amazon": {
		"behavioral": {
			{
				Text:        "Tell me about a time when you went above and beyond for a customer.",
				Principle:   "Customer Obsession",
				StarPrompts: []string{"What was the situation?", "What did you do?", "What was the measurable impact?"},
			},
			{
				Text:        "Describe a time when you took ownership of a project that was outside your scope.",
				Principle:   "Ownership",
				StarPrompts: []string{"Why did you step up?", "What challenges did you face?", "What was the outcome?"},
			},
			{
				Text:        "Tell me about a time you invented or simplified a process.",
				Principle:   "Invent and Simplify",
				StarPrompts: []string{"What problem were you solving?", "What was your innovation?", "How did you measure success?"},
			},
			{
				Text:        "Give me an example of when you had to make a difficult decision quickly.",
				Principle:   "Bias for Action",
				StarPrompts: []string{"What was at stake?", "How did you decide?", "Would you do it differently?"},
			},
			{
				Text:        "Tell me about a time you disagreed with your manager or team.",
				Principle:   "Have Backbone; Disagree and Commit",
				StarPrompts: []string{"What was your position?", "How did you communicate it?", "What happened after?"},
			},
			{
				Text:        "Describe a situation where you had to dive deep into data to solve a problem.",
				Principle:   "Dive Deep",
				StarPrompts: []string{"What was the problem?", "What did you discover?", "How did it change your approach?"},
			},
			{
				Text:        "Tell me about your most significant accomplishment. Why is it significant?",
				Principle:   "Deliver Results",
				StarPrompts: []string{"What was the goal?", "What obstacles did you overcome?", "What was the impact?"},
			},
			{
				Text:        "Give an example of when you had to learn something new quickly.",
				Principle:   "Learn and Be Curious",
				StarPrompts: []string{"What did you need to learn?", "How did you approach it?", "How do you continue learning?"},
			},
		},
		"coding": {
			{
				Text:       "Implement an LRU Cache with O(1) get and put operations.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"data_structures", "design"},
			},
			{
				Text:       "Find the optimal path in a warehouse for a robot picking items.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"graphs", "optimization"},
			},
		},
		"system_design": {
			{
				Text:       "Design Amazon's product recommendation system.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"ml_systems", "personalization", "scale"},
			},
			{
				Text:       "Design a real-time inventory management system for Amazon warehouses.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"distributed_systems", "consistency", "real_time"},
			},
		},
	},
	"meta": {
		"coding": {
			{
				Text:       "Given a list of integers, return the number of valid subarrays. A subarray is valid if the sum of its elements is equal to its length.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"arrays", "prefix_sum"},
			},
			{
				Text:       "Implement a function to serialize and deserialize a binary tree.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"trees", "serialization"},
			},
			{
				Text:       "Find all possible combinations of phone number letters (like T9 texting).",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"recursion", "backtracking"},
			},
			{
				Text:       "Given a 2D grid, find the shortest path from start to end avoiding obstacles.",
				Difficulty: analysis.DifficultyMedium,
				Topics:     []string{"graphs", "bfs"},
			},
			{
				Text:       "Implement a basic regex matcher supporting '.' and '*' characters.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"dynamic_programming", "strings"},
			},
		},
		"system_design": {
			{
				Text:       "Design Facebook News Feed. Consider ranking, personalization, and real-time updates.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"ranking", "caching", "real_time"},
			},
			{
				Text:       "Design Instagram Stories feature. Think about storage, delivery, and ephemeral content.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"storage", "cdn", "ephemeral_data"},
			},
			{
				Text:       "Design WhatsApp messaging system. Focus on message delivery guarantees and encryption.",
				Difficulty: analysis.DifficultyHard,
				Topics:     []string{"messaging", "encryption", "distributed"},
			},
		},
		"behavioral": {
			{
				Text:      "Tell me about a time you shipped a product feature under tight deadlines. What tradeoffs did you make?",
				Principle: "Move Fast",
			},
			{
				Text:      "Describe a situation where you had to balance multiple competing priorities.",
				Principle: "Focus on Impact",
			},
			{
				Text:      "Tell me about a technical decision you made that you later regretted. What did you learn?",
				Principle: "Be Open",
			},
		},
	},
}
