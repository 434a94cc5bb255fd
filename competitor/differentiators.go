package competitor

import "strings"

// knownCompanies maps well-known vendors to curated differentiator
// summaries. Curated beats scraped here: positioning copy on a vendor's
// own site never states their weaknesses.
var knownCompanies = map[string]string{
	"Salesforce": "Salesforce is the market leader in CRM with a comprehensive platform, extensive ecosystem, and robust AI capabilities (Einstein). They offer a wide range of integrated products but can be complex and expensive for smaller businesses.",

	"HubSpot": "HubSpot offers an all-in-one marketing, sales, and service platform with a focus on inbound methodology. They provide a generous free tier, user-friendly interface, and strong content marketing tools, but may lack some advanced features of enterprise solutions.",

	"Zendesk": "Zendesk excels in customer service and help desk functionality with intuitive ticket management. They offer omnichannel support capabilities and flexible pricing, but their sales CRM capabilities are less mature than dedicated CRM platforms.",

	"Zoho": "Zoho CRM is known for affordability and extensive integration with Zoho's productivity suite. They offer strong customization options and international support, but may have a steeper learning curve and less polished UI than some competitors.",

	"Microsoft Dynamics": "Microsoft Dynamics 365 offers deep integration with Microsoft products (Office 365, Teams, etc.) and strong enterprise capabilities. It provides powerful customization through Power Platform but can be complex to implement and use.",

	"Oracle": "Oracle CX Cloud Suite provides enterprise-grade solutions with strong database integration and analytics. They offer comprehensive industry-specific solutions but can be expensive and complex to implement.",

	"SAP": "SAP Customer Experience (formerly C/4HANA) delivers robust enterprise solutions with strong ERP integration. They excel in data management and business process optimization but require significant implementation resources.",

	"Pipedrive": "Pipedrive focuses on sales pipeline management with an intuitive visual interface. They offer strong sales-focused features and activity-based selling methodology but have more limited marketing and service capabilities.",

	"Freshworks": "Freshworks (Freshsales) provides affordable, user-friendly CRM with strong automation. They offer quick implementation and good customer support but may lack some advanced enterprise features.",

	"Atlassian": "Atlassian's products (particularly Jira, Confluence, and OpsGenie) are known for robust issue tracking, extensive integrations, and strong collaboration features. Their solutions are developer-centric with flexible workflows, though they can have a steep learning curve.",

	"PagerDuty": "PagerDuty is a digital operations management platform that helps organizations respond to incidents and outages. It's known for reliable alerting, flexible routing rules, and extensive integration capabilities.",

	"Zenduty": "Zenduty is an incident management platform focused on alerting, on-call scheduling, and incident response. It offers competitive pricing and core features similar to PagerDuty but may have a smaller ecosystem of integrations.",
}

// unknownDifferentiators is returned for vendors outside the curated set.
const unknownDifferentiators = "This competitor's differentiators are not specifically identified in our database."

// KnownDifferentiators returns the curated differentiator summary for a
// company name, matching case-insensitively on substring so "Zoho CRM"
// still resolves to "Zoho".
func KnownDifferentiators(companyName string) string {
	nameLower := strings.ToLower(companyName)
	for key, value := range knownCompanies {
		if strings.Contains(nameLower, strings.ToLower(key)) {
			return value
		}
	}
	return unknownDifferentiators
}
