package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

// SeedID derives a stable id for a seed row so reseeding never duplicates.
func SeedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// SeedDefaults loads the reference data set for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	propRepo := repository.NewPropertyRepo(db)
	existing, err := propRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	if err := seedProperties(ctx, propRepo); err != nil {
		return err
	}
	if err := seedOffers(ctx, repository.NewOfferRepo(db)); err != nil {
		return err
	}
	if err := seedMessages(ctx, repository.NewMessageRepo(db)); err != nil {
		return err
	}
	if err := seedTimeline(ctx, repository.NewTimelineRepo(db)); err != nil {
		return err
	}
	if err := seedMarket(ctx, repository.NewMarketRepo(db)); err != nil {
		return err
	}
	return seedDashboard(ctx, repository.NewDashboardRepo(db))
}

func seedProperties(ctx context.Context, repo *repository.PropertyRepo) error {
	props := []repository.Property{
		{Title: "Modern Downtown Loft", Address: "123 Urban St", PriceCents: 78_500_000, Beds: 2, Baths: 2, Sqft: 1450},
		{Title: "Seaside Villa", Address: "456 Coastal Ave", PriceCents: 125_000_000, Beds: 4, Baths: 3, Sqft: 2800},
		{Title: "Mountain Retreat", Address: "789 Alpine Rd", PriceCents: 92_000_000, Beds: 3, Baths: 2.5, Sqft: 2100},
	}
	for i, p := range props {
		p.ID = SeedID("property", p.Title)
		p.SortOrder = i
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedOffers(ctx context.Context, repo *repository.OfferRepo) error {
	templates := []repository.OfferTemplate{
		{Name: "Standard Offer", Description: "A balanced offer template for most property types"},
		{Name: "Competitive Market", Description: "Stronger terms for highly competitive markets"},
		{Name: "Investor Special", Description: "Tailored for investment properties with favorable contingencies"},
		{Name: "First-Time Buyer", Description: "Extra protections for first-time homebuyers"},
	}
	for i, t := range templates {
		t.ID = SeedID("template", t.Name)
		t.SortOrder = i
		if err := repo.UpsertTemplate(ctx, t); err != nil {
			return err
		}
	}

	saved := []repository.SavedOffer{
		{PropertyID: SeedID("property", "Modern Downtown Loft"), Date: "Mar 12, 2025", Status: "Draft", AmountCents: 76_500_000},
		{PropertyID: SeedID("property", "Seaside Villa"), Date: "Mar 10, 2025", Status: "Submitted", AmountCents: 122_500_000},
	}
	for i, o := range saved {
		o.ID = SeedID("saved-offer", o.PropertyID+o.Date)
		o.SortOrder = i
		if err := repo.UpsertSaved(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func seedMessages(ctx context.Context, repo *repository.MessageRepo) error {
	msgs := []repository.Message{
		{
			Category: "lender", Sender: "Michael Johnson", SenderRole: "Loan Officer",
			Subject: "Loan Pre-Approval Update", Date: "Today, 10:23 AM", Unread: true,
			Body: "Good news! Your loan pre-approval has been increased to $850,000 based on the updated documentation you provided. This puts you in a stronger position for the properties you've been looking at in Downtown and Riverfront. Let me know if you have any questions about the updated terms.",
			Attachments: []repository.Attachment{{Name: "Pre-Approval-Letter.pdf", Size: "245 KB"}},
		},
		{
			Category: "inspector", Sender: "Sarah Wilson", SenderRole: "Inspector",
			Subject: "Inspection Report - Modern Downtown Loft", Date: "Yesterday, 4:15 PM",
			Body: "I've completed the inspection of the property at 123 Urban St. Please find attached the full report. Overall, the property is in good condition, but there are a few items that you should be aware of. The HVAC system is showing signs of age and may need replacement in the next 2-3 years. There are also some minor plumbing issues in the master bathroom that should be addressed. I've detailed all findings in the report. Please let me know if you have any questions.",
			Attachments: []repository.Attachment{
				{Name: "Downtown-Loft-Inspection.pdf", Size: "4.2 MB"},
				{Name: "Inspection-Photos.zip", Size: "12.8 MB"},
			},
		},
		{
			Category: "title", Sender: "Jennifer Blake", SenderRole: "Title Company",
			Subject: "Title Search Results", Date: "Mar 12, 2025",
			Body: "We've completed the preliminary title search for the property at 123 Urban St. I'm pleased to report that there are no major issues with the title. There is a standard utility easement on the north side of the property, which is common. All property taxes are current, and there are no liens or encumbrances that would affect your purchase. We're ready to proceed with preparing the closing documents once you've completed the inspection period.",
			Attachments: []repository.Attachment{{Name: "Preliminary-Title-Report.pdf", Size: "1.8 MB"}},
		},
		{
			Category: "insurance", Sender: "Thomas Rodriguez", SenderRole: "Insurance Agent",
			Subject: "Homeowners Insurance Quote", Date: "Mar 10, 2025",
			Body: "Based on the information you provided for the Downtown Loft, I've prepared three homeowners insurance quotes for your review. The premium estimates range from $1,200 to $1,850 annually, depending on the coverage levels and deductibles. The middle option provides the best balance of coverage and cost, in my opinion. I've highlighted the key differences between the policies in the attached comparison. Please let me know which option you prefer or if you'd like to discuss further adjustments to the coverage.",
			Attachments: []repository.Attachment{{Name: "Insurance-Quote-Comparison.pdf", Size: "320 KB"}},
		},
		{
			Category: "agent", Sender: "David Chen", SenderRole: "Seller's Agent",
			Subject: "Response to Inspection Requests", Date: "Mar 8, 2025",
			Body: "Thank you for your inspection request list. The sellers have reviewed your requests and are willing to address the plumbing issues in the master bathroom and replace the water heater. However, they feel that the HVAC system is functioning properly for its age and are not willing to provide credit for future replacement. They've also agreed to leave the washer and dryer as requested. Please let me know if these terms are acceptable, and we can prepare the appropriate addendum.",
		},
	}
	advice := []string{
		"This increased pre-approval amount strengthens your buying position. I recommend we update your offer on the Modern Downtown Loft to reflect this higher amount, potentially increasing your bid by 3-5% to make it more competitive in the current market conditions.",
		"Based on the inspector's findings, I recommend requesting repairs for the plumbing issues in the master bathroom. Regarding the aging HVAC system, while it's functioning now, you might consider requesting a one-year home warranty to cover potential failures. I can help draft a repair request based on these findings.",
		"The title search results look clean, which is excellent news. The utility easement is standard and shouldn't affect your use of the property. We can proceed with confidence to the next steps of the transaction. No action is needed from you at this time.",
		"I agree with the agent's assessment that the middle option provides the best value. With a downtown property, water damage is a key concern, so ensure the policy has good coverage for that. Would you like me to compare these quotes against typical rates for similar properties in this area?",
		"The seller has agreed to fix the plumbing issues and replace the water heater, which addresses the immediate concerns. While they declined to address the HVAC, it is functioning properly. Given the property's desirability and the current competitive market, this response is reasonable. I recommend accepting these terms.",
	}
	for i, m := range msgs {
		m.ID = SeedID("message", m.Subject)
		m.SortOrder = i
		if err := repo.Upsert(ctx, m); err != nil {
			return err
		}
		if err := repo.UpsertAnnotation(ctx, m.ID, advice[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedTimeline(ctx context.Context, repo *repository.TimelineRepo) error {
	due := func(s string) *string { return &s }
	stages := []repository.TimelineStage{
		{
			Name: "Pre-Approval", Completed: true, Date: "Feb 28, 2025", Description: "Loan pre-approval obtained",
			Tasks: []repository.TimelineTask{
				{Name: "Submit financial documents", Completed: true},
				{Name: "Credit check", Completed: true},
				{Name: "Receive pre-approval letter", Completed: true},
			},
		},
		{
			Name: "Property Search", Completed: true, Date: "Mar 5, 2025", Description: "Property selected",
			Tasks: []repository.TimelineTask{
				{Name: "Define search criteria", Completed: true},
				{Name: "View properties", Completed: true},
				{Name: "Select target property", Completed: true},
			},
		},
		{
			Name: "Offer Submission", Completed: true, Date: "Mar 7, 2025", Description: "Offer accepted",
			Tasks: []repository.TimelineTask{
				{Name: "Prepare offer", Completed: true},
				{Name: "Submit offer", Completed: true},
				{Name: "Offer accepted", Completed: true},
			},
		},
		{
			Name: "Due Diligence", Active: true, Date: "Mar 14, 2025 (Deadline)", Description: "Inspection completed, waiting for resolution",
			Tasks: []repository.TimelineTask{
				{Name: "Property inspection", Completed: true},
				{Name: "Review inspection report", Completed: true},
				{Name: "Submit repair requests", Completed: true},
				{Name: "Negotiate repairs", Due: due("Mar 14, 2025")},
				{Name: "Sign repair addendum"},
			},
		},
		{
			Name: "Financing", Date: "Mar 21, 2025 (Deadline)", Description: "Waiting for appraisal",
			Tasks: []repository.TimelineTask{
				{Name: "Submit loan application", Completed: true},
				{Name: "Property appraisal", Due: due("Mar 18, 2025")},
				{Name: "Loan underwriting"},
				{Name: "Receive loan commitment", Due: due("Mar 21, 2025")},
			},
		},
		{
			Name: "Closing Preparation", Date: "Mar 28, 2025", Description: "Not started",
			Tasks: []repository.TimelineTask{
				{Name: "Homeowner's insurance"},
				{Name: "Review closing disclosure"},
				{Name: "Arrange wire transfer"},
				{Name: "Final walkthrough"},
			},
		},
		{
			Name: "Closing", Date: "Apr 1, 2025", Description: "Not started",
			Tasks: []repository.TimelineTask{
				{Name: "Sign closing documents"},
				{Name: "Fund escrow"},
				{Name: "Receive keys"},
			},
		},
	}
	for i, s := range stages {
		s.ID = SeedID("stage", s.Name)
		s.SortOrder = i
		for j := range s.Tasks {
			s.Tasks[j].ID = SeedID("task", s.Name+":"+s.Tasks[j].Name)
			s.Tasks[j].SortOrder = j
		}
		if err := repo.UpsertStage(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedMarket(ctx context.Context, repo *repository.MarketRepo) error {
	points := []repository.MarketPoint{
		{Month: "Jan", Value: 540},
		{Month: "Feb", Value: 520},
		{Month: "Mar", Value: 610},
		{Month: "Apr", Value: 600},
		{Month: "May", Value: 720},
		{Month: "Jun", Value: 750},
	}
	for i, p := range points {
		p.SortOrder = i
		if err := repo.InsertPoint(ctx, p); err != nil {
			return err
		}
	}

	insights := []repository.MarketInsight{
		{Area: "Downtown", Body: "Properties are receiving multiple offers within 48 hours of listing, with 68% going under contract within 5 days. Luxury condos are particularly competitive."},
		{Area: "Riverfront", Body: "Buyers offering 3-5% above asking price with minimal contingencies are winning 85% of competitive situations. New development has boosted interest in this area, with a 43% increase in searches."},
		{Area: "Both areas", Body: "New inventory is expected to increase by 12% in the next 30 days based on seasonal patterns and pending building completions. This may temporarily ease competition."},
	}
	for i, ins := range insights {
		ins.ID = SeedID("insight", ins.Area)
		ins.SortOrder = i
		if err := repo.UpsertInsight(ctx, ins); err != nil {
			return err
		}
	}
	return nil
}

func seedDashboard(ctx context.Context, repo *repository.DashboardRepo) error {
	openers := []repository.ChatOpener{
		{Speaker: "assistant", Body: "Hi there! I'm Agent Ally, your AI real estate assistant. How can I help you today?"},
		{Speaker: "user", Body: "I'm interested in making an offer on the Modern Downtown Loft."},
		{Speaker: "assistant", Body: "That's a great property choice! Based on recent comps in that neighborhood, properties are selling at about 2% below asking. Would you like me to help you prepare a competitive offer?"},
		{Speaker: "user", Body: "Yes, but I'm concerned about the inspection contingency. Should I waive it to be more competitive?"},
		{Speaker: "assistant", Body: "I understand your desire to make a competitive offer, but I'd advise against waiving the inspection contingency completely. The Modern Downtown Loft was built in 2008 and could have hidden issues. Instead, I recommend a shortened inspection timeline (3 days instead of 7) and specifying you'll only request repairs exceeding $5,000. This gives you protection while still showing sellers you're serious. I've updated your offer template with this approach, which you can review in the Offer Generator section."},
	}
	for i, c := range openers {
		c.ID = SeedID("opener", c.Body[:24])
		c.SortOrder = i
		if err := repo.UpsertOpener(ctx, c); err != nil {
			return err
		}
	}

	stats := []repository.BuyerStat{
		{Key: "saved_properties", Label: "Saved Properties", Value: 12},
		{Key: "recent_views", Label: "Recent Views", Value: 36},
		{Key: "offers", Label: "Offers", Value: 2},
		{Key: "days_active", Label: "Days Active", Value: 31},
	}
	for _, s := range stats {
		if err := repo.UpsertStat(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
