package render

import "html/template"

var funcs = template.FuncMap{
	"date": FormatDate,
}

const blogListTmpl = `{{range .}}
<article class="post-item" tabindex="0" data-slug="{{.Slug}}">
  <div class="post-title">{{.Title}}</div>
  <div class="post-date">{{date .Date}}</div>
  <div class="post-summary">{{.Summary}}</div>
</article>{{end}}`

const postTmpl = `
<h1>{{.Title}}</h1>
<div class="post-date">{{date .Date}}</div>
{{.Body}}`

const postErrorTmpl = `<p class="error">Could not load post: {{.Slug}}<br><small>{{.Reason}}</small></p>`

const publicationsTmpl = `{{range .}}
<article class="pub-item">
  <div class="pub-title">{{.Title}}</div>
  <div class="pub-authors">{{.Authors}}</div>
  <div class="pub-venue">{{.Venue}}, {{.Year}}</div>
  {{- with .Links}}
  <div class="pub-links">{{range .}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a>{{end}}</div>
  {{- end}}
</article>{{end}}`

const projectsTmpl = `{{range .}}
<article class="project-item">
  <div class="project-title">{{.Title}}</div>
  <div class="project-desc">{{.Description}}</div>
  {{- with .Tags}}
  <div class="project-tags">{{range .}}<span class="tag">{{.}}</span>{{end}}</div>
  {{- end}}
  <div class="project-links">
    {{- with .GitHub}}<a href="{{.}}" target="_blank" rel="noopener">GitHub</a>{{end}}
    {{- with .Demo}}<a href="{{.}}" target="_blank" rel="noopener">Demo</a>{{end}}
  </div>
</article>{{end}}`

const readingsTmpl = `
{{- with .Filter}}<div class="reading-filter">Filtered by: <span class="tag active">{{.}}</span> <button class="clear-filter">Clear</button></div>{{end}}
{{- range .Items}}
<article class="reading-item">
  <a href="{{.URL}}" target="_blank" rel="noopener" class="reading-title">{{.Title}}</a>
  <div class="reading-meta">by {{.Author}}</div>
  {{- with .Tags}}
  <div class="reading-tags">{{range .}}<span class="tag{{if .Active}} active{{end}}" data-tag="{{.Name}}">{{.Name}}</span>{{end}}</div>
  {{- end}}
  {{- with .Note}}
  <div class="reading-note">{{.}}</div>
  {{- end}}
  <div class="reading-added">Added {{date .Added}}</div>
</article>{{end}}`

var templates = template.Must(template.New("render").Funcs(funcs).Parse(""))

func init() {
	for name, body := range map[string]string{
		"blog-list":    blogListTmpl,
		"post":         postTmpl,
		"post-error":   postErrorTmpl,
		"publications": publicationsTmpl,
		"projects":     projectsTmpl,
		"readings":     readingsTmpl,
	} {
		template.Must(templates.New(name).Parse(body))
	}
}
