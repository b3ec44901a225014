package pages

import "github.com/mtlprog/clinicsite/internal/domain"

// Featured is the short list shown on the home page.
var Featured = []domain.ServiceListing{
	{
		Title:       "Telehealth Consultations",
		Description: "Convenient virtual appointments from the comfort of your home with secure, HIPAA-compliant technology.",
		Icon:        domain.IconVideo,
	},
	{
		Title:       "Preventive Care",
		Description: "Comprehensive health screenings and wellness programs to keep you healthy and prevent illness.",
		Icon:        domain.IconShield,
	},
	{
		Title:       "Chronic Disease Management",
		Description: "Ongoing support and monitoring for conditions like diabetes, hypertension, and heart disease.",
		Icon:        domain.IconHeart,
	},
}

// Catalog is the full list on the services page.
var Catalog = []domain.ServiceListing{
	{
		Title:       "Primary Care",
		Description: "Comprehensive primary care services including annual physicals, preventive care, and chronic disease management.",
		Icon:        domain.IconHeart,
	},
	{
		Title:       "Wellness Programs",
		Description: "Personalized wellness plans focusing on nutrition, exercise, stress management, and lifestyle optimization.",
		Icon:        domain.IconBolt,
	},
	{
		Title:       "Health Education",
		Description: "Patient education and resources to help you make informed decisions about your health and treatment options.",
		Icon:        domain.IconDocument,
	},
	{
		Title:       "Telehealth",
		Description: "Convenient virtual consultations for follow-ups, medication management, and non-urgent health concerns.",
		Icon:        domain.IconSliders,
	},
	{
		Title:       "Preventive Care",
		Description: "Screenings, vaccinations, and preventive measures to help you stay healthy and catch issues early.",
		Icon:        domain.IconClipboard,
	},
	{
		Title:       "Family Care",
		Description: "Healthcare services for the whole family, from adolescents to seniors, with a focus on continuity of care.",
		Icon:        domain.IconFamily,
	},
}

// Credentials are the practitioner highlights on the home page.
var Credentials = []string{
	"Board-Certified Nurse Practitioner",
	"Telehealth Specialist",
	"Preventive Care Expert",
}

// OfficeHours is shown on the contact page.
var OfficeHours = []string{
	"Monday - Friday: 9:00 AM - 5:00 PM",
	"Saturday: 9:00 AM - 1:00 PM",
	"Sunday: Closed",
}

// Expectation is one "what to expect" note on the contact page.
type Expectation struct {
	Title string
	Body  string
}

// Expectations are shown below the contact details.
var Expectations = []Expectation{
	{
		Title: "New Patients",
		Body:  "Please arrive 15 minutes early to complete paperwork. Bring your insurance card and a list of current medications.",
	},
	{
		Title: "Insurance",
		Body:  "We accept most major insurance plans. Please contact us to verify your coverage before your visit.",
	},
	{
		Title: "Telehealth",
		Body:  "Virtual appointments are available for follow-ups and non-urgent consultations. Book online or call to schedule.",
	},
}
