package worklog

import "strings"

const (
	documentHead = "<!DOCTYPE html>\n" +
		"<html lang=\"en\">\n" +
		"<head>\n" +
		"<meta charset=\"UTF-8\">\n" +
		"<title>Weekly Work Report</title>\n" +
		"</head>\n" +
		"<body>\n" +
		"<table border='1'>\n" +
		"<tr><th>Project</th><th>Author</th><th>Date</th><th>Report</th></tr>\n"

	documentTail = "</table>\n" +
		"</body>\n" +
		"</html>\n"
)

// RenderHTML builds the report document: projects in CompareProjects order,
// records within a project in input order. Cell values are written as-is
// without HTML escaping.
func RenderHTML(groups *Groups) string {
	builder := strings.Builder{}
	builder.Grow(len(documentHead) + len(documentTail) + groups.Len()*128)

	builder.WriteString(documentHead)
	for _, project := range groups.Projects() {
		for _, rec := range groups.Records(project) {
			writeRow(&builder, rec)
		}
	}
	builder.WriteString(documentTail)

	return builder.String()
}

func writeRow(builder *strings.Builder, rec Record) {
	builder.WriteString("<tr>")
	for _, cell := range [...]string{rec.Project, rec.Author, rec.Date, rec.Report} {
		builder.WriteString("<td>")
		builder.WriteString(cell)
		builder.WriteString("</td>")
	}
	builder.WriteString("</tr>\n")
}
