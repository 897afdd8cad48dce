// Package pdf implementa la versión impresa de la agenda de visitas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agenda de Visitas + periodo │ solicitante + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  por cada día con visitas:                                  │
//	│    DÍA: Segunda-feira 01/07/2024                            │
//	│    TABLA: Hora | Cliente | Representante | Status | Obs.     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total / confirmadas / pendentes                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/agendarep-api/internal/application/usecase"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOK      = &props.Color{Red: 0, Green: 128, Blue: 60}
	colorPending = &props.Color{Red: 190, Green: 110, Blue: 0}
)

var weekdays = [...]string{
	"Domingo", "Segunda-feira", "Terça-feira", "Quarta-feira",
	"Quinta-feira", "Sexta-feira", "Sábado",
}

const displayDate = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoAgendaGenerator implementa usecase.AgendaPDFGenerator usando Maroto v2.
type MarotoAgendaGenerator struct {
	now func() time.Time
}

var _ usecase.AgendaPDFGenerator = (*MarotoAgendaGenerator)(nil)

// NewMarotoAgendaGenerator construye el generador.
func NewMarotoAgendaGenerator() *MarotoAgendaGenerator {
	return &MarotoAgendaGenerator{now: time.Now}
}

// GenerateAgendaPDF genera el PDF y devuelve sus bytes. Las visitas llegan ordenadas
// por data y hora.
func (g *MarotoAgendaGenerator) GenerateAgendaPDF(_ context.Context, report usecase.AgendaReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Agenda de Visitas", true).
		WithAuthor(report.Solicitante, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Visitas) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Nenhuma visita agendada no período.", props.Text{
				Size: 10, Align: align.Center, Top: 4, Color: colorGray,
			}),
		)))
	}
	for _, day := range groupByDay(report.Visitas) {
		m.AddRows(dayHeaderRow(day[0].Data))
		m.AddRows(tableHeaderRow())
		for _, v := range day {
			m.AddRows(visitRow(v))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(report.Visitas)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y periodo (izq); solicitante y fecha de emisión (der).
func headerRow(report usecase.AgendaReport, now time.Time) core.Row {
	periodo := fmt.Sprintf("%s a %s", report.Inicio.Format(displayDate), report.Fim.Format(displayDate))
	return row.New(18).Add(
		col.New(7).Add(
			text.New("AGENDA DE VISITAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(report.Solicitante, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Emitido em "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// dayHeaderRow: nombre del día y fecha.
func dayHeaderRow(d time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s %s", weekdays[d.Weekday()], d.Format(displayDate)), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla de visitas del día.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Hora", 1, align.Center),
		h("Cliente", 4, align.Left),
		h("Representante", 2, align.Left),
		h("Status", 2, align.Center),
		h("Observação", 3, align.Left),
	)
}

// visitRow: una fila por visita.
func visitRow(v *entity.Visit) core.Row {
	status, color := "Pendente", colorPending
	if v.Confirmado {
		status, color = "Confirmada", colorOK
	}
	cliente := v.DisplayName()
	if v.Cliente.IsTemporary() && v.Cliente.TelefoneTemp != "" {
		cliente += " (" + v.Cliente.TelefoneTemp + ")"
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(v.Hora, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(4).Add(text.New(cliente, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(nonEmpty(v.NomeRepresentante, v.CodUsuario), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: color})),
		col.New(3).Add(text.New(truncate(v.Observacao, 60), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
	)
}

// summaryRows: totales del periodo alineados a la derecha.
func summaryRows(visits []*entity.Visit) []core.Row {
	confirmadas := 0
	for _, v := range visits {
		if v.Confirmado {
			confirmadas++
		}
	}
	total := func(label string, n int, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(6),
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(2).Add(text.New(fmt.Sprint(n), props.Text{
				Style: style, Size: 9, Align: align.Right, Right: 1,
			})),
		)
	}
	return []core.Row{
		total("Visitas no período:", len(visits), true),
		total("Confirmadas:", confirmadas, false),
		total("Pendentes:", len(visits)-confirmadas, false),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// groupByDay agrupa visitas consecutivas con la misma data.
func groupByDay(visits []*entity.Visit) [][]*entity.Visit {
	var days [][]*entity.Visit
	for _, v := range visits {
		n := len(days)
		if n > 0 && days[n-1][0].Data.Equal(v.Data) {
			days[n-1] = append(days[n-1], v)
			continue
		}
		days = append(days, []*entity.Visit{v})
	}
	return days
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// truncate corta s a n runas, agregando "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
