package prompt

import (
	"fmt"
	"sort"
	"strings"

	"ai-tireshop-be/internal/constant"
	"ai-tireshop-be/pkg/chat/grounding"
)

// SystemBuilder renders the grounding bundle into the single system turn sent
// before the replayed history. The bundle is embedded verbatim; the model is
// told to answer only from it.
type SystemBuilder struct {
	bundle         *grounding.Bundle
	currentContext string
}

func NewSystemBuilder(bundle *grounding.Bundle, currentContext string) *SystemBuilder {
	return &SystemBuilder{
		bundle:         bundle,
		currentContext: currentContext,
	}
}

func (b *SystemBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("You are the virtual assistant for a tire retail shop. Answer customer questions using ONLY the context below.\n\n")
	sb.WriteString("CONTEXT:\n")

	b.writeCompanyInfo(&sb)
	b.writeSettings(&sb)
	b.writeServices(&sb)
	b.writePolicies(&sb)
	b.writeFAQ(&sb)
	b.writeProducts(&sb)
	b.writePageContext(&sb)

	sb.WriteString("\n")
	sb.WriteString(constant.AssistantBehaviorRulesV1)

	return sb.String()
}

func (b *SystemBuilder) writeCompanyInfo(sb *strings.Builder) {
	if len(b.bundle.CompanyInfo) == 0 {
		return
	}

	categories := make([]string, 0, len(b.bundle.CompanyInfo))
	for category := range b.bundle.CompanyInfo {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sb.WriteString("\n[Company]\n")
	for _, category := range categories {
		facts := b.bundle.CompanyInfo[category]
		keys := make([]string, 0, len(facts))
		for key := range facts {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(sb, "%s %s: %s\n", category, key, facts[key])
		}
	}
}

func (b *SystemBuilder) writeSettings(sb *strings.Builder) {
	if gst, ok := b.bundle.Settings["gst_rate"]; ok {
		fmt.Fprintf(sb, "\n[Tax]\nGST rate: %s (applies to all quoted prices)\n", gst)
	}
	if zone, ok := b.bundle.Settings["local_delivery_zone"]; ok {
		fmt.Fprintf(sb, "Local delivery zone: %s\n", zone)
	}
}

func (b *SystemBuilder) writeServices(sb *strings.Builder) {
	if len(b.bundle.Services) == 0 {
		return
	}
	sb.WriteString("\n[Services]\n")
	for _, svc := range b.bundle.Services {
		fmt.Fprintf(sb, "- %s", svc.Name)
		if svc.PriceNote != "" {
			fmt.Fprintf(sb, " (%s)", svc.PriceNote)
		}
		if svc.Description != "" {
			fmt.Fprintf(sb, ": %s", svc.Description)
		}
		sb.WriteString("\n")
	}
}

func (b *SystemBuilder) writePolicies(sb *strings.Builder) {
	if len(b.bundle.Policies) == 0 {
		return
	}
	sb.WriteString("\n[Policies]\n")
	for _, p := range b.bundle.Policies {
		fmt.Fprintf(sb, "%s: %s\n", p.Title, p.Body)
	}
}

func (b *SystemBuilder) writeFAQ(sb *strings.Builder) {
	if len(b.bundle.FAQs) == 0 {
		return
	}
	sb.WriteString("\n[FAQ]\n")
	for _, f := range b.bundle.FAQs {
		fmt.Fprintf(sb, "Q: %s\nA: %s\n", f.Question, f.Answer)
	}
}

func (b *SystemBuilder) writeProducts(sb *strings.Builder) {
	if len(b.bundle.Products) == 0 {
		return
	}
	if b.bundle.TireSize != "" {
		fmt.Fprintf(sb, "\n[Products matching %s]\n", b.bundle.TireSize)
	} else {
		sb.WriteString("\n[Products]\n")
	}
	for _, p := range b.bundle.Products {
		fmt.Fprintf(sb, "- %s %s %s | $%.2f | %s", p.Vendor, p.Size, p.Type, p.Price, p.Availability)
		if p.Description != "" {
			fmt.Fprintf(sb, " | %s", p.Description)
		}
		sb.WriteString("\n")
	}
}

func (b *SystemBuilder) writePageContext(sb *strings.Builder) {
	if b.currentContext == "" {
		return
	}
	fmt.Fprintf(sb, "\n[Customer's current page]\n%s\n", b.currentContext)
}
