// Package taxonomy provides fixed-vocabulary matchers for technical skills,
// soft skills and ATS insight terms in job posting text.
package taxonomy

// TechnicalSkillCap limits how many technical skills are reported.
const TechnicalSkillCap = 15

// technicalSkills is the fixed technical vocabulary, in canonical display
// casing. Matching uses word boundaries to avoid partial hits.
var technicalSkills = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Rust", "C++",
	"C#", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "React", "Angular",
	"Vue", "Node.js", "AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Terraform", "Ansible", "Jenkins", "Git", "CI/CD", "SQL", "PostgreSQL",
	"MySQL", "MongoDB", "Redis", "Kafka", "GraphQL", "REST", "Linux",
	"Microservices", "Agile", "Scrum",
}

// softSkills is matched by substring because many entries are multi-word
// phrases that word boundaries would split awkwardly.
var softSkills = []string{
	"Communication", "Leadership", "Teamwork", "Collaboration",
	"Problem Solving", "Problem-Solving", "Critical Thinking",
	"Time Management", "Adaptability", "Creativity", "Attention to Detail",
	"Stakeholder Management", "Project Management", "Mentoring",
	"Cross-Functional", "Self-Starter", "Analytical", "Negotiation",
	"Presentation", "Decision Making", "Conflict Resolution", "Empathy",
	"Ownership", "Strategic Thinking", "Customer Focus",
}

// actionVerbs are past-tense achievement verbs ATS scanners reward.
var actionVerbs = []string{
	"Achieved", "Improved", "Launched", "Developed", "Built", "Led",
	"Managed", "Created", "Designed", "Implemented", "Delivered",
	"Increased", "Reduced", "Optimized", "Automated", "Streamlined",
	"Spearheaded", "Architected", "Drove",
}

// metricTerms signal quantified impact.
var metricTerms = []string{
	"Percent", "Million", "Billion", "Revenue", "Growth", "ROI", "KPI",
	"Users", "Uptime", "Throughput",
}

// industryTerms are domain markers ATS filters key on.
var industryTerms = []string{
	"SaaS", "B2B", "B2C", "Fintech", "Healthcare", "E-Commerce", "Enterprise",
}
