package genai

import "fmt"

func enhancePrompt(title, notes string) string {
	return "Enhance this project description for a high-end tech portfolio. " +
		"Make it sound professional, innovative, and results-oriented: " +
		fmt.Sprintf("Title: %s. Raw notes: %s", title, notes)
}

func suggestPrompt(profileContext string) string {
	return fmt.Sprintf(`You are acting as a specialized scraper and parser.
Based on this professional profile context: %q

Generate 3 hypothetical, highly detailed, and impressive portfolio projects that this person (an AI Workflow & Automation Specialist) would likely have completed.
Focus on tools like n8n, Make.com, Zapier, Python, and LLMs.

Return ONLY a valid JSON array of objects. No markdown code blocks.
Format:
[
  {
    "title": "Project Title",
    "description": "Short punchy description",
    "tags": ["tag1", "tag2"],
    "caseStudy": "A longer paragraph describing the problem and solution."
  }
]`, profileContext)
}
