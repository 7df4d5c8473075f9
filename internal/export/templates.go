package export

// pageTemplate is the Go html/template wrapping an exported course.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <main>
    {{.Timeline}}
    <footer class="export-footer">Generated with coursetrail{{if .Model}} using {{.Model}}{{end}}.</footer>
  </main>
</body>
</html>`

// cssContent is the stylesheet written next to every exported course.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  background: var(--bg-secondary);
  color: var(--text);
}
main { max-width: 900px; margin: 0 auto; padding: 2rem 1rem; }
.course-header h1 { margin-bottom: 0.25rem; }
.course-description { color: var(--text-muted); }
.prerequisites h2, .month-label {
  font-size: 1rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
}
.month { margin-top: 2rem; }
.week {
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  margin-bottom: 0.75rem;
  overflow: hidden;
}
.week-header, .day-header {
  display: flex;
  align-items: center;
  gap: 0.75rem;
  width: 100%;
  text-align: left;
  background: none;
  border: none;
  padding: 0.85rem 1rem;
  font-size: 1rem;
}
.week-number, .day-number { font-weight: 700; color: var(--accent); white-space: nowrap; }
.week-focus, .day-meta { margin-left: auto; font-size: 0.8rem; color: var(--text-muted); white-space: nowrap; }
.concepts {
  margin: 0;
  padding: 0 1rem 0.75rem 1rem;
  list-style: none;
  display: flex;
  flex-wrap: wrap;
  gap: 0.4rem;
}
.concepts li {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 0.1rem 0.6rem;
  font-size: 0.8rem;
}
.days { list-style: none; margin: 0; padding: 0 0.75rem 0.75rem; }
.day { border: 1px solid var(--border); border-radius: 6px; margin-top: 0.5rem; }
.day-detail { padding: 0 1rem 1rem; }
.resources { list-style: none; padding: 0; }
.resource { border-top: 1px solid var(--border); padding: 0.5rem 0; }
.resource-thumb { max-width: 120px; border-radius: 4px; display: block; margin-bottom: 0.25rem; }
.spinner { display: none; }
.export-footer {
  margin-top: 3rem;
  font-size: 0.8rem;
  color: var(--text-muted);
  text-align: center;
}
pre {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 0.75rem;
  overflow-x: auto;
}
`
