package dispatch

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.New("").Funcs(htmltemplate.FuncMap{
		"date": formatDate,
	}).ParseFS(templateFS, "templates/*.html.tmpl"))

	textTemplates = texttemplate.Must(texttemplate.New("").Funcs(texttemplate.FuncMap{
		"date": formatDate,
	}).ParseFS(templateFS, "templates/*.txt.tmpl"))
)

type recipient struct {
	name  string
	email string
}

type jobLink struct {
	domain.JobSummary
	URL string
}

type emailData struct {
	Name      string
	Jobs      []jobLink
	Search    string
	SearchURL string
}

func (d *Dispatcher) alertMessage(s domain.SavedSearch, to recipient, jobs []domain.JobSummary) (domain.EmailMessage, error) {
	data := d.emailData(s, to)
	data.Jobs = make([]jobLink, 0, len(jobs))
	for _, j := range jobs {
		data.Jobs = append(data.Jobs, jobLink{JobSummary: j, URL: d.link("/jobs/" + j.ID.String())})
	}

	subject := fmt.Sprintf("%d new jobs for %s", len(jobs), data.Search)
	if len(jobs) == 1 {
		subject = fmt.Sprintf("1 new job for %s", data.Search)
	}
	return render("alert", data, domain.EmailMessage{
		To:       to.email,
		Subject:  subject,
		Category: domain.EmailCategoryNotification,
		Tags:     []string{"job-alert"},
	})
}

func (d *Dispatcher) heartbeatMessage(s domain.SavedSearch, to recipient) (domain.EmailMessage, error) {
	data := d.emailData(s, to)
	return render("heartbeat", data, domain.EmailMessage{
		To:       to.email,
		Subject:  fmt.Sprintf("Still searching: %s", data.Search),
		Category: domain.EmailCategoryNotification,
		Tags:     []string{"heartbeat"},
	})
}

func (d *Dispatcher) emailData(s domain.SavedSearch, to recipient) emailData {
	name := to.name
	if name == "" {
		name = "there"
	}
	return emailData{
		Name:      name,
		Search:    describe(s.Criteria),
		SearchURL: d.link("/saved-searches/" + s.ID.String()),
	}
}

func (d *Dispatcher) link(path string) string {
	return strings.TrimRight(d.baseURL, "/") + path
}

// render fills the HTML and text bodies of msg from the named templates.
func render(name string, data emailData, msg domain.EmailMessage) (domain.EmailMessage, error) {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, name+".html.tmpl", data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render %s html: %w", name, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, name+".txt.tmpl", data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render %s text: %w", name, err)
	}
	msg.HTML = html.String()
	msg.Text = text.String()
	return msg, nil
}

// describe summarizes criteria for subjects and bodies.
func describe(c domain.SearchCriteria) string {
	var parts []string
	if c.Keyword != "" {
		parts = append(parts, c.Keyword)
	}
	if c.Category != "" {
		parts = append(parts, c.Category)
	}
	if c.Location != "" {
		parts = append(parts, "in "+c.Location)
	}
	if c.Remote != nil && *c.Remote {
		parts = append(parts, "remote")
	}
	if len(parts) == 0 {
		return "your saved search"
	}
	return strings.Join(parts, " ")
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
