package mailservice

// Message исходящее письмо для почтового шлюза
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
