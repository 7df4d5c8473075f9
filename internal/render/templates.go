package render

// timelineTemplate is the Go html/template for the full course view. It is
// re-executed from a fresh snapshot after every state change; there is no
// incremental patching.
const timelineTemplate = `<div class="course">
  <header class="course-header">
    <h1>{{.Title}}</h1>
    {{if .Description}}<p class="course-description">{{.Description}}</p>{{end}}
    {{if .Prerequisites}}
    <div class="prerequisites">
      <h2>Prerequisites</h2>
      <ul>{{range .Prerequisites}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{end}}
  </header>
  <div class="timeline">
  {{range months .Weeks}}
    <div class="month">
      <h2 class="month-label">{{.Label}}</h2>
      {{range .Weeks}}
      <section class="week{{if .Expanded}} expanded{{end}}{{if .Loading}} loading{{end}}" data-week="{{.Number}}">
        <button type="button" class="week-header" data-action="toggle-week" data-week="{{.Number}}">
          <span class="week-number">Week {{.Number}}</span>
          <span class="week-title">{{.Title}}</span>
          {{if .Focus}}<span class="week-focus">{{.Focus}}</span>{{end}}
          {{if .Loading}}<span class="spinner" role="status" aria-label="Generating week"></span>{{end}}
        </button>
        {{if .Concepts}}
        <ul class="concepts">{{range .Concepts}}<li>{{.}}</li>{{end}}</ul>
        {{end}}
        {{if .Expanded}}
        {{$week := .Number}}
        <ol class="days">
          {{range .Days}}
          <li class="day{{if .Loaded}} loaded{{end}}{{if .Loading}} loading{{end}}" data-day="{{.Number}}">
            <button type="button" class="day-header" data-action="load-day" data-week="{{$week}}" data-day="{{.Number}}">
              <span class="day-number">Day {{globalDay $week .Number}}</span>
              <span class="day-title">{{.Title}}</span>
              <span class="day-meta">{{.TaskType}} &middot; {{.DurationMinutes}} min</span>
              {{if .Loading}}<span class="spinner" role="status" aria-label="Generating day"></span>{{end}}
            </button>
            {{if .Concepts}}
            <ul class="concepts">{{range .Concepts}}<li>{{.}}</li>{{end}}</ul>
            {{end}}
            {{if .Loaded}}
            <div class="day-detail">
              <div class="day-description">{{markdown .Details.Description}}</div>
              {{if .Details.TableOfContents}}
              <div class="day-toc">
                <h4>Covered today</h4>
                <ul>{{range .Details.TableOfContents}}<li>{{.}}</li>{{end}}</ul>
              </div>
              {{end}}
              {{if .Details.Resources}}
              <ul class="resources">
                {{range .Details.Resources}}
                <li class="resource resource-{{.Source}}">
                  {{if .Thumbnail}}<img class="resource-thumb" src="{{.Thumbnail}}" alt="">{{end}}
                  <a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>
                  {{if .Description}}<p>{{.Description}}</p>{{end}}
                </li>
                {{end}}
              </ul>
              {{end}}
            </div>
            {{end}}
          </li>
          {{end}}
        </ol>
        {{end}}
      </section>
      {{end}}
    </div>
  {{end}}
  </div>
</div>`
