package openai

import (
	"fmt"
	"strings"

	"github.com/saleslens/saleslens/ai"
)

const (
	// Input caps keep the prompt inside the model context window.
	maxCompanyContentChars = 3000
	maxPressContentChars   = 1000
	maxProductSheetChars   = 2000
)

// buildSystemPrompt returns the system role instructions for report generation.
func buildSystemPrompt() string {
	return "You are a sales intelligence agent specialized in helping sales " +
		"representatives prepare for meetings with potential clients. You extract " +
		"specific insights from company websites, press releases, job postings, and " +
		"public documents to help sales reps understand their prospects. Focus on " +
		"providing factual, accurate information that follows the exact output requirements."
}

// buildInsightPrompt renders the user prompt for one report request.
func buildInsightPrompt(req *ai.InsightRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### SALES CONTEXT\n")
	fmt.Fprintf(&b, "- You're helping sell: %s (Product Category: %s)\n", orNA(req.ProductName), orNA(req.ProductCategory))
	fmt.Fprintf(&b, "- Target company: %s\n", orNA(req.CompanyURL))
	fmt.Fprintf(&b, "- Target stakeholders: %s\n", orNA(req.TargetCustomer))
	fmt.Fprintf(&b, "- Value proposition: %s\n\n", orNA(req.ValueProposition))

	fmt.Fprintf(&b, "### TARGET COMPANY DATA\n%s\n\n", truncate(req.CompanyContent, maxCompanyContentChars))
	fmt.Fprintf(&b, "### PRESS/NEWS CONTENT\n%s\n\n", truncate(req.PressContent, maxPressContentChars))

	if req.ProductSheet != "" {
		fmt.Fprintf(&b, "### PRODUCT OVERVIEW\n%s\n\n", truncate(req.ProductSheet, maxProductSheetChars))
	}

	fmt.Fprintf(&b, `### TASK
Create a detailed sales intelligence one-pager with the following SPECIFIC sections exactly as described:

1. COMPANY STRATEGY:
   - Provide a summary of the company's activities in the industry relevant to %[1]s.
   - Extract and highlight any public statements, press releases, or articles where key executives have discussed relevant topics.
   - Analyze job postings or other indicators that hint at the company's strategy or technology stack (e.g., skills required in job postings).

2. LEADERSHIP INFORMATION:
   - Identify key leaders at the prospect company who would be involved in purchasing decisions for %[2]s.
   - Highlight their relevance to this potential purchase (e.g., those quoted in press releases over the last year).
   - Include specific titles, responsibilities, and decision-making authority if available.

3. PRODUCT/STRATEGY SUMMARY:
   - For public companies, include insights from 10-Ks, annual reports, or other relevant documents available online.
   - Analyze how the company's current strategy and technology align with %[1]s.
   - Identify specific pain points or challenges that our solution could address.

4. ARTICLE LINKS:
   - Provide links to full articles, press releases, or other sources mentioned in your analysis.
   - Organize these links by category (e.g., Company Strategy, Leadership, Technology Stack).
   - Include a brief description of what each source contains.

Your response must be formatted as a JSON object with these exact keys: "company_strategy", "leadership_information", "product_strategy_summary", and "article_links".

For the "article_links" section, format it as a string with proper markdown bullet points or numbered lists - not as a nested dictionary or JSON object.

Make each section detailed, specific, and actionable for the sales rep. If you cannot find certain information, explain what is missing and provide your best educated guess based on the company's industry and size.
`, orDefault(req.ProductName, "our product"), orDefault(req.ProductCategory, "this type of solution"))

	return b.String()
}

func orNA(s string) string {
	return orDefault(s, "N/A")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
