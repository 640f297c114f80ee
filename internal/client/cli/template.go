package cli

const movieListTemplate = `{{- range $i, $m := . }}
{{ inc $i }}. {{ $m.Title }}{{ if $m.Is3D }} [3D]{{ end }}{{ if $m.IsLocal }} (not synced){{ end }}
   ID:       {{ $m.ID }}
   Director: {{ $m.Director }}
   Released: {{ $m.ReleaseDate.Format "2006-01-02" }}
   Price:    {{ printf "%.2f" $m.Price }}
{{- end }}
`

const conflictTemplate = `
=== Version Conflict: {{ .Server.Title }} ===

Your copy:
  Title:    {{ .Attempted.Title }}
  Director: {{ .Attempted.Director }}
  Price:    {{ printf "%.2f" .Attempted.Price }}

Server copy (version {{ .Server.Version }}):
  Title:    {{ .Server.Title }}
  Director: {{ .Server.Director }}
  Price:    {{ printf "%.2f" .Server.Price }}
`
