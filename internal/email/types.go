package email

// Email is one outbound message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload rendered into the HTML templates.
type TemplateData struct {
	PlateNumber string
	SlotNumber  string
	Location    string
	Reason      string
	OtpCode     string
	TTLMinutes  int
}
