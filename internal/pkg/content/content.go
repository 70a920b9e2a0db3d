// Package content holds the static marketing copy rendered around the funnel.
package content

type Banner struct {
	Title    string
	Subtitle string
	CTALabel string
	CTAHref  string
}

type Feature struct {
	Title       string
	Description string
}

type Testimonial struct {
	Quote   string
	Author  string
	Company string
}

type TeamMember struct {
	Name string
	Role string
	Bio  string
}

type FAQEntry struct {
	Question string
	Answer   string
}

var banners = []Banner{
	{
		Title:    "Your business website, live in days",
		Subtitle: "Pick a plan, tell us what you need, and our team builds, hosts and maintains it.",
		CTALabel: "See pricing",
		CTAHref:  "/pricing",
	},
	{
		Title:    "Sell online without the headache",
		Subtitle: "Storefronts with payments, inventory and delivery zones set up for you.",
		CTALabel: "Start a store",
		CTAHref:  "/pricing#business",
	},
}

var features = []Feature{
	{Title: "Done for you", Description: "Design, build and launch handled by a dedicated team."},
	{Title: "Hosting included", Description: "Fast hosting, SSL and daily backups on every plan."},
	{Title: "Mobile first", Description: "Every page is tested on phones before it goes live."},
	{Title: "Local payments", Description: "Accept cards and transfers in your customers' currency."},
}

var testimonials = []Testimonial{
	{Quote: "We went from a Facebook page to a real storefront in under two weeks.", Author: "Chioma A.", Company: "Ada's Kitchen"},
	{Quote: "The team understood exactly what a law firm website needs.", Author: "Kwame B.", Company: "Boateng & Partners"},
	{Quote: "Bookings doubled in the first month after launch.", Author: "Sarah L.", Company: "Harbour Yoga"},
}

var team = []TeamMember{
	{Name: "Tunde Okafor", Role: "Founder", Bio: "Ten years building websites for small businesses across West Africa."},
	{Name: "Efua Mensah", Role: "Lead Designer", Bio: "Turns brand guidelines into pages people want to scroll."},
	{Name: "James Carter", Role: "Engineering", Bio: "Keeps every site fast, secure and backed up."},
}

var faq = []FAQEntry{
	{Question: "How long does a website take?", Answer: "Most Basic and Pro sites launch within 7 to 14 days of receiving your content."},
	{Question: "Can I change plans later?", Answer: "Yes. Upgrades take effect on your next billing cycle."},
	{Question: "What currency will I be charged in?", Answer: "Prices are shown in your region's currency. Payments settle in a single currency through our payment processor and the checkout shows a notice when the two differ."},
	{Question: "What is the Custom plan?", Answer: "For projects that need bespoke features. Send us your requirements and we reply with a quote, no payment needed up front."},
	{Question: "Do I own my website?", Answer: "Yes. Your content and domain are yours and can be transferred at any time."},
}

func Banners() []Banner {
	return append([]Banner(nil), banners...)
}

func Features() []Feature {
	return append([]Feature(nil), features...)
}

func Testimonials() []Testimonial {
	return append([]Testimonial(nil), testimonials...)
}

func Team() []TeamMember {
	return append([]TeamMember(nil), team...)
}

func FAQ() []FAQEntry {
	return append([]FAQEntry(nil), faq...)
}
