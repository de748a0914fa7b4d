package requests

type EmailPayload struct {
	From     string   `json:"from"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTMLCode string   `json:"html_code"`
}
