// Package assistant implements the career assistant: a scripted,
// keyword-matched bot plus an optional passthrough to an OpenAI-compatible
// chat-completion provider.
//
// WHY A RULE TABLE AND NOT AN if/else CHAIN?
// The scripted bot maps free text to one of N canned responses by keyword
// containment, with a mandatory fallback. Modelling that as an ordered list
// of (predicate, response) rules evaluated first-match-wins keeps the data
// out of the control flow: each rule is testable on its own, new rules are
// one literal away, and rule precedence is visible in one place instead of
// buried in branch order.
package assistant

import (
	"fmt"
	"strings"

	"github.com/jobwise/jobwise/internal/model"
)

// rule is one entry in the script: match decides whether the rule fires for
// the lowercased message, respond builds the reply (some rules personalize
// from the user's profile).
type rule struct {
	match   func(lowered string) bool
	respond func(user *model.User) string
}

// Bot answers messages by walking its rule table in order and returning the
// first match's response. The last rule always matches, so Reply never
// returns an empty answer.
type Bot struct {
	rules []rule
}

// NewBot creates a Bot with the built-in career-advice script.
func NewBot() *Bot {
	return &Bot{rules: defaultRules()}
}

// Greeting is the opening message a client shows before the user has said
// anything.
const Greeting = "Hello! I'm your AI assistant for job searching. I can help you with career advice, resume tips, interview preparation, or finding jobs that match your skills. What would you like help with today?"

// Reply returns the scripted response for the given message.
//
// user may be nil — rules that personalize from the profile fall back to a
// generic answer. Matching is case-insensitive keyword containment; no
// natural-language understanding is attempted or pretended.
func (b *Bot) Reply(user *model.User, message string) string {
	lowered := strings.ToLower(message)
	for _, r := range b.rules {
		if r.match(lowered) {
			return r.respond(user)
		}
	}
	// Unreachable: the fallback rule matches everything. Kept so a future
	// edit that drops the fallback fails loudly in tests, not silently here.
	return fallbackResponse
}

// contains builds a predicate matching any of the given keywords.
func contains(keywords ...string) func(string) bool {
	return func(lowered string) bool {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return true
			}
		}
		return false
	}
}

// containsAll builds a predicate requiring every keyword to appear.
func containsAll(keywords ...string) func(string) bool {
	return func(lowered string) bool {
		for _, kw := range keywords {
			if !strings.Contains(lowered, kw) {
				return false
			}
		}
		return true
	}
}

func both(a, b func(string) bool) func(string) bool {
	return func(lowered string) bool { return a(lowered) && b(lowered) }
}

func static(response string) func(*model.User) string {
	return func(*model.User) string { return response }
}

const fallbackResponse = "I'm here to help with your job search and career questions. You can ask me about:\n• Job recommendations based on your skills\n• Resume and cover letter tips\n• Interview preparation\n• Skill development advice\n• Salary negotiation\n\nWhat would you like to know more about?"

// defaultRules is the assistant's script, evaluated top to bottom.
// Order matters: earlier rules win. The fallback must stay last.
func defaultRules() []rule {
	return []rule{
		{
			match:   contains("hello", "hi "),
			respond: static("Hello! How can I assist you today?"),
		},
		{
			match:   containsAll("skill", "improve"),
			respond: static("To improve your skills, I recommend:\n\n1. Take online courses on platforms like Coursera, Udemy, or LinkedIn Learning\n2. Work on personal projects to apply what you've learned\n3. Contribute to open-source projects\n4. Join professional communities and attend events\n5. Find a mentor in your field"),
		},
		{
			match:   contains("resume", "cv"),
			respond: static("For a strong resume, make sure to:\n\n• Tailor it to each job application\n• Use quantifiable achievements rather than just listing responsibilities\n• Include relevant keywords from the job description\n• Keep it concise (1-2 pages)\n• Proofread carefully for any errors\n\nWould you like me to review your resume? You can describe its current sections."),
		},
		{
			match:   contains("interview"),
			respond: static("To prepare for job interviews:\n\n1. Research the company thoroughly\n2. Practice common questions for your role\n3. Prepare concrete examples using the STAR method (Situation, Task, Action, Result)\n4. Prepare thoughtful questions to ask the interviewer\n5. Do a mock interview with a friend\n\nWhich specific aspect of interview preparation would you like help with?"),
		},
		{
			match:   both(contains("recommend"), contains("job", "career")),
			respond: recommendRoles,
		},
		{
			match:   contains("salary", "pay", "compensation"),
			respond: static("Salary ranges vary by location, experience level, and company size. For the most accurate data, I recommend checking sites like Glassdoor, PayScale, or levels.fyi.\n\nTo negotiate effectively:\n• Research the market rate for your role and location\n• Highlight your unique value and achievements\n• Consider the total compensation package (benefits, bonuses, etc.)\n• Practice your negotiation conversation"),
		},
		{
			match:   contains("project management", "agile"),
			respond: static("For effective project management:\n\n1. Understand Agile methodologies like Scrum or Kanban\n2. Communicate clearly with your team\n3. Use tools like Trello, Jira, or Asana for task tracking\n4. Be adaptable to changes in project scope or deadlines"),
		},
		{
			match:   contains("networking", "connections"),
			respond: static("Networking is key to your career growth:\n\n1. Attend industry events and conferences\n2. Join relevant LinkedIn groups and online communities\n3. Follow up after meetings with personalized messages\n4. Offer help or advice to others in your network"),
		},
		{
			match:   contains("cover letter"),
			respond: static("For a standout cover letter, remember to:\n\n• Tailor it to the job description\n• Show enthusiasm for the role and company\n• Mention key accomplishments that align with the job requirements\n• Keep it concise and error-free"),
		},
		{
			match:   contains("freelancing", "contract work"),
			respond: static("Freelancing can be a rewarding career choice. To succeed:\n\n1. Build a strong online portfolio\n2. Network to find potential clients\n3. Set clear rates and contract terms\n4. Deliver quality work on time to build your reputation"),
		},
		{
			match:   contains("leadership", "manager"),
			respond: static("Effective leadership is essential for success:\n\n1. Be a role model — lead by example\n2. Communicate clearly and regularly with your team\n3. Provide constructive feedback\n4. Foster a culture of collaboration and innovation"),
		},
		{
			match:   contains("tech trends", "emerging technologies"),
			respond: static("Some of the biggest tech trends to follow right now include:\n\n1. Artificial Intelligence and Machine Learning\n2. Cloud Computing and DevOps\n3. Cybersecurity advancements\n4. Blockchain and decentralized applications\n5. Augmented Reality (AR) and Virtual Reality (VR)"),
		},
		{
			match:   contains("cloud computing", "aws", "azure"),
			respond: static("Cloud computing is transforming the tech industry:\n\n1. Learn about services like AWS, Azure, and Google Cloud\n2. Get certified to boost your career prospects\n3. Experiment with hosting your own apps or websites in the cloud"),
		},
		{
			match:   contains("python"),
			respond: static("Career options for someone with Python skills:\n\n1. Data Scientist — Work with data to extract meaningful insights\n2. Machine Learning Engineer — Build models and algorithms to make systems smarter\n3. Backend Developer — Develop the server-side of web applications\n4. Web Developer — Use frameworks like Django and Flask for building web apps\n5. Automation Engineer — Automate repetitive tasks and processes\n6. DevOps Engineer — Work on CI/CD pipelines and infrastructure automation"),
		},
		{
			match:   contains("advance career"),
			respond: static("Skills to learn to advance your career:\n\n1. Learn a second programming language (e.g., JavaScript, Java, Go)\n2. Master version control (Git) for collaboration\n3. Gain expertise in cloud platforms like AWS, Azure, or GCP\n4. Learn frameworks and libraries relevant to your domain (e.g., Django, React)\n5. Improve problem-solving and algorithmic skills\n6. Understand system design and architecture principles"),
		},
		{
			match:   contains("working from home"),
			respond: static("Tips for working from home:\n\n1. Set a dedicated workspace to minimize distractions\n2. Stick to a routine and manage your time effectively\n3. Use tools like Slack, Zoom, and Asana for communication and collaboration\n4. Take regular breaks to avoid burnout\n5. Stay connected with your team and maintain clear communication\n6. Set boundaries between work and personal time"),
		},
		{
			match:   contains("burnout"),
			respond: static("Strategies to avoid burnout:\n\n1. Prioritize self-care with regular exercise and healthy eating\n2. Take breaks throughout the day to recharge\n3. Set clear work-life boundaries to prevent overworking\n4. Break tasks into manageable chunks to avoid feeling overwhelmed\n5. Seek support from colleagues, mentors, or a therapist if needed\n6. Learn to say 'no' and delegate tasks when necessary"),
		},
		{
			match:   contains("certification"),
			respond: static("Tech certifications that can advance your career:\n\n1. AWS Certified Solutions Architect — Cloud computing expertise\n2. Google Professional Machine Learning Engineer — For machine learning professionals\n3. Microsoft Certified: Azure Fundamentals — Cloud computing and Microsoft Azure\n4. CompTIA Security+ — Cybersecurity fundamentals\n5. Certified Kubernetes Administrator — For DevOps and containerization\n6. Cisco Certified Network Associate (CCNA) — Networking expertise"),
		},
		{
			match:   contains("machine learning"),
			respond: static("Industries looking for machine learning engineers:\n\n1. Technology — Developing intelligent software and services\n2. Healthcare — Medical imaging, predictive analytics, and diagnostics\n3. Finance — Fraud detection, algorithmic trading, and risk assessment\n4. E-commerce — Recommendation engines and personalization\n5. Automotive — Autonomous vehicles and smart transportation systems\n6. Telecommunications — Network optimization and customer support automation"),
		},
		{
			match:   contains("linkedin"),
			respond: static("Tips for improving your LinkedIn profile:\n\n1. Have a professional and clear profile picture\n2. Write a strong headline that highlights your expertise and value\n3. Craft a compelling summary with your skills, experience, and career goals\n4. List your key achievements and quantify them where possible\n5. Collect recommendations from colleagues and mentors\n6. Engage with content relevant to your industry to build your network"),
		},
		{
			match:   contains("programming languages"),
			respond: static("Programming languages in high demand:\n\n1. Python — For data science, machine learning, and web development\n2. JavaScript — For frontend and backend web development\n3. Java — For enterprise applications and Android development\n4. Go — For high-performance backend systems\n5. TypeScript — For scalable web applications\n6. Rust — For systems programming and performance-critical applications"),
		},
		{
			match:   contains("transition to technical"),
			respond: static("To transition from a non-technical role to a technical role:\n\n1. Start by learning programming basics (e.g., Python, JavaScript)\n2. Take online courses or bootcamps to build foundational knowledge\n3. Work on personal projects to gain hands-on experience\n4. Participate in coding challenges and hackathons to build a portfolio\n5. Network with professionals in the field and seek mentorship\n6. Apply for junior or entry-level positions to gain industry experience"),
		},
		{
			match:   contains("tech portfolio"),
			respond: static("To impress employers with your tech portfolio:\n\n1. Include a variety of projects showcasing your skills\n2. Provide clear documentation for each project (e.g., README files)\n3. Demonstrate problem-solving abilities and your approach to challenges\n4. Include links to your GitHub or any other code repositories\n5. Show your knowledge of version control (e.g., Git)\n6. Make your portfolio easy to navigate and professional"),
		},
		{
			match:   contains("remote jobs"),
			respond: static("Best way to apply for remote tech jobs:\n\n1. Use job boards that specialize in remote work (e.g., We Work Remotely, Remote OK)\n2. Tailor your resume and cover letter to emphasize your remote work experience\n3. Highlight your communication and time management skills\n4. Demonstrate your ability to work independently and manage projects\n5. Network with people in remote-first companies to get referrals\n6. Prepare for remote interview settings (e.g., video calls, virtual collaboration tools)"),
		},
		{
			match:   contains("career gap"),
			respond: static("Tips for explaining a career gap in interviews:\n\n1. Be honest about the reason for the gap and emphasize what you learned during the time\n2. If you were upskilling, mention any courses or certifications you completed\n3. Highlight any freelance or volunteer work that's relevant to the job\n4. Show how you've stayed up-to-date with industry trends during the gap\n5. Focus on your excitement to get back into the workforce and how you're ready to contribute"),
		},
		{
			// Mandatory fallback — matches everything, must stay last.
			match:   func(string) bool { return true },
			respond: static(fallbackResponse),
		},
	}
}

// recommendRoles personalizes role suggestions from the user's declared
// skills. With no profile or no skills it asks for them instead.
func recommendRoles(user *model.User) string {
	if user == nil || len(user.Skills) == 0 {
		return "I can provide better job recommendations if you update your skills profile. What technologies or skills are you proficient in?"
	}

	has := func(skills ...string) bool {
		for _, want := range skills {
			for _, s := range user.Skills {
				if s == want {
					return true
				}
			}
		}
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your skills (%s), you might consider roles like:\n\n", strings.Join(user.Skills, ", "))

	frontend := has("JavaScript", "React")
	backend := has("Node.js", "SQL")
	if frontend {
		b.WriteString("• Frontend Developer\n")
	}
	if backend {
		b.WriteString("• Backend Developer\n")
	}
	if frontend && backend {
		b.WriteString("• Full Stack Developer\n")
	}
	if has("Python", "Machine Learning", "Data Science") {
		b.WriteString("• Data Scientist\n• Machine Learning Engineer\n")
	}
	if has("AWS", "Azure", "GCP") {
		b.WriteString("• Cloud Engineer\n• DevOps Engineer\n")
	}
	return b.String()
}
