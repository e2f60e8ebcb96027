package handlers

import "html/template"

// Pages are compiled once at router init. Kept inline so the binary is
// self-contained; the markup is deliberately minimal.

const indexPage = `<!DOCTYPE html>
<html>
<head><title>My Tasks</title></head>
<body>
{{with .Flash}}<p class="flash {{.Category}}">{{.Message}}</p>{{end}}
<h1>My Tasks ({{.Count}})</h1>
<ul>
{{range .Tasks}}<li><strong>{{.Title}}</strong> — {{.Description}} <a href="/delete/{{.ID}}">delete</a></li>
{{else}}<li>No tasks yet.</li>
{{end}}</ul>
<form method="post" action="/">
  <input name="title" placeholder="Title" required>
  <input name="desc" placeholder="Description" required>
  <button type="submit">Add</button>
</form>
<p><a href="/logout">Log out</a></p>
</body>
</html>`

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Log in</title></head>
<body>
{{with .Flash}}<p class="flash {{.Category}}">{{.Message}}</p>{{end}}
<h1>Log in</h1>
<form method="post" action="/login">
  <input name="email" type="email" placeholder="Email" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Log in</button>
</form>
<p>No account? <a href="/register">Register</a></p>
</body>
</html>`

const registerPage = `<!DOCTYPE html>
<html>
<head><title>Register</title></head>
<body>
{{with .Flash}}<p class="flash {{.Category}}">{{.Message}}</p>{{end}}
<h1>Register</h1>
<form method="post" action="/register">
  <input name="username" placeholder="Username" required>
  <input name="email" type="email" placeholder="Email" required>
  <input name="password" type="password" placeholder="Password" required>
  <button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Log in</a></p>
</body>
</html>`

// Template names used by handlers when rendering.
const (
	tmplIndex    = "index"
	tmplLogin    = "login"
	tmplRegister = "register"
)

func pageTemplates() *template.Template {
	t := template.Must(template.New(tmplIndex).Parse(indexPage))
	template.Must(t.New(tmplLogin).Parse(loginPage))
	template.Must(t.New(tmplRegister).Parse(registerPage))
	return t
}
