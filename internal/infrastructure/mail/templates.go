package mail

import (
	"fmt"
	"html/template"

	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

type mailTemplate struct {
	subject *template.Template
	body    *template.Template
}

const completedSubject = `Inspección {{.inspection_id}} completada{{if .quote_num}} (cotización {{.quote_num}}){{end}}`

const salesPersonBody = `<p>Hola {{.sales_person_name}},</p>
<p>La inspección <b>{{.inspection_id}}</b> de <b>{{.customer_name}}</b> fue completada por {{.completed_by_name}}{{if .completed_on}} el {{.completed_on}}{{end}}.</p>
<table>
<tr><td>Cotización</td><td>{{.quote_num}}</td></tr>
<tr><td>Tag</td><td>{{.tag_number}}</td></tr>
<tr><td>Departamento</td><td>{{.department}}</td></tr>
<tr><td>Descripción</td><td>{{.description}}</td></tr>
</table>
<p>Ya puede preparar la cotización.</p>`

const salesTeamBody = `<p>Equipo de ventas:</p>
<p>La inspección <b>{{.inspection_id}}</b> de <b>{{.customer_name}}</b> fue completada por {{.completed_by_name}}{{if .completed_on}} el {{.completed_on}}{{end}} y no tiene vendedor asignado.</p>
<table>
<tr><td>Cotización</td><td>{{.quote_num}}</td></tr>
<tr><td>Tag</td><td>{{.tag_number}}</td></tr>
<tr><td>Departamento</td><td>{{.department}}</td></tr>
<tr><td>Descripción</td><td>{{.description}}</td></tr>
</table>`

func parseTemplates() (map[inspection.NotificationKind]mailTemplate, error) {
	bodies := map[inspection.NotificationKind]string{
		inspection.NotifySalesPerson: salesPersonBody,
		inspection.NotifySalesTeam:   salesTeamBody,
	}
	out := make(map[inspection.NotificationKind]mailTemplate, len(bodies))
	for kind, body := range bodies {
		subject, err := template.New(string(kind) + "_subject").Option("missingkey=zero").Parse(completedSubject)
		if err != nil {
			return nil, fmt.Errorf("parse subject %s: %w", kind, err)
		}
		b, err := template.New(string(kind)).Option("missingkey=zero").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parse body %s: %w", kind, err)
		}
		out[kind] = mailTemplate{subject: subject, body: b}
	}
	return out, nil
}
