// Package monitor implements the display-surface variant of the
// simulator: a BubbleTea program that renders the current reading, a
// sparkline of recent history, and per-channel stats. It replaces the
// LCD panel of the original device.
package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/woundguard/internal/chart"
	"github.com/luki/woundguard/internal/history"
	"github.com/luki/woundguard/internal/sensor"
)

// historySize bounds per-channel history; at the slowest cadence this is
// over an hour of readings.
const historySize = 600

// ── Messages ─────────────────────────────────────────────────────────

type readingMsg struct {
	reading sensor.Reading
	time    time.Time
}

type faultMsg struct{ err error }

type stoppedMsg struct{}

// ── Sink ─────────────────────────────────────────────────────────────

// Sink forwards readings from the generator loop into the running
// BubbleTea program. The loop never touches the display directly.
type Sink struct {
	p *tea.Program
}

// NewSink wraps a program as an emit.Sink.
func NewSink(p *tea.Program) *Sink {
	return &Sink{p: p}
}

func (s *Sink) Emit(r sensor.Reading) error {
	s.p.Send(readingMsg{reading: r, time: time.Now()})
	return nil
}

func (s *Sink) Fault(err error) {
	s.p.Send(faultMsg{err: err})
}

func (s *Sink) Close() error {
	s.p.Send(stoppedMsg{})
	return nil
}

// ── Channels ─────────────────────────────────────────────────────────

// channel describes how one reading field is displayed.
type channel struct {
	key    string
	label  string
	color  lipgloss.Color
	lo, hi float64
	value  func(sensor.Reading) float64
	text   func(sensor.Reading) string
}

// Panel colors follow the original LCD: pH cyan, temperature orange,
// moisture green.
var channels = []channel{
	{
		key:   "ph",
		label: "pH",
		color: lipgloss.Color("51"),
		lo:    sensor.PHMin,
		hi:    sensor.PHMax,
		value: func(r sensor.Reading) float64 { return r.PH },
		text:  func(r sensor.Reading) string { return fmt1(r.PH) },
	},
	{
		key:   "temp",
		label: "Temperature",
		color: lipgloss.Color("208"),
		lo:    sensor.TempMin,
		hi:    sensor.TempMax,
		value: func(r sensor.Reading) float64 { return r.TempC },
		text:  func(r sensor.Reading) string { return fmt1(r.TempC) + "°C" },
	},
	{
		key:   "moisture",
		label: "Moisture",
		color: lipgloss.Color("78"),
		lo:    float64(sensor.MoistureMin),
		hi:    float64(sensor.MoistureMax),
		value: func(r sensor.Reading) float64 { return float64(r.Moisture) },
		text:  func(r sensor.Reading) string { return strconv.Itoa(r.Moisture) + "%" },
	},
}

func fmt1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model for the display surface.
type Model struct {
	serial     string
	hist       *history.Store
	last       sensor.Reading
	hasReading bool
	lastUpdate time.Time
	startTime  time.Time
	err        error
	stopped    bool
	width      int
	height     int
}

// New creates the initial model. serial identifies this simulator
// session in the title bar.
func New(serial string) Model {
	return Model{
		serial:    serial,
		hist:      history.NewStore(historySize),
		startTime: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case readingMsg:
		m.last = msg.reading
		m.hasReading = true
		m.lastUpdate = msg.time
		for _, ch := range channels {
			m.hist.Record(ch.key, ch.value(msg.reading), msg.time)
		}

	case faultMsg:
		m.err = msg.err

	case stoppedMsg:
		m.stopped = true
		return m, tea.Quit
	}

	return m, nil
}

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorBorder   = lipgloss.Color("62")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorCrit     = lipgloss.Color("196")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sections []string

	sections = append(sections, m.renderTitleBar(contentWidth))

	if m.err != nil {
		errBox := lipgloss.NewStyle().
			Foreground(colorCrit).
			Bold(true).
			Width(contentWidth).
			Padding(0, 1).
			Render(fmt.Sprintf(" ERROR: %v", m.err))
		sections = append(sections, errBox)
	}

	if !m.hasReading {
		waiting := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render("Waiting for sensor data...")
		sections = append(sections, waiting)
	} else {
		for _, ch := range channels {
			sections = append(sections, m.renderChannelPanel(ch, contentWidth))
		}
	}

	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("WOUNDGUARD SIMULATOR")

	var statusParts []string

	serial := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(m.serial)
	statusParts = append(statusParts, serial)

	uptime := lipgloss.NewStyle().
		Foreground(colorDim).
		Render(fmt.Sprintf("up %s", fmtDuration(time.Since(m.startTime))))
	statusParts = append(statusParts, uptime)

	if !m.lastUpdate.IsZero() {
		ts := lipgloss.NewStyle().
			Foreground(colorDim).
			Render("updated " + m.lastUpdate.Format("15:04:05"))
		statusParts = append(statusParts, ts)
	}

	sep := lipgloss.NewStyle().Foreground(colorDim).Render(" │ ")
	right := strings.Join(statusParts, sep)

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + filler + right)
}

func (m Model) renderChannelPanel(ch channel, totalWidth int) string {
	labelW := 14
	valueW := 8

	chartWidth := totalWidth - labelW - valueW - 32
	if chartWidth < 15 {
		chartWidth = 15
	}
	if chartWidth > 140 {
		chartWidth = 140
	}

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	frameL := lipgloss.NewStyle().Foreground(colorBorder).Render("▕")
	frameR := lipgloss.NewStyle().Foreground(colorBorder).Render("▏")

	label := lipgloss.NewStyle().
		Foreground(colorLabel).
		Width(labelW).
		Render(ch.label)

	value := lipgloss.NewStyle().
		Foreground(ch.color).
		Bold(true).
		Width(valueW).
		Align(lipgloss.Right).
		Render(ch.text(m.last))

	var spark, stats string
	if hist := m.hist.Get(ch.key); hist != nil {
		pts := hist.LastNPoints(chartWidth)
		spark = chart.RenderSparkline(pts, chartWidth, ch.lo, ch.hi, ch.color)
		stats = dimS.Render(" avg") + valS.Render(fmt.Sprintf("%5.1f", hist.Avg())) +
			dimS.Render(" lo") + valS.Render(fmt.Sprintf("%5.1f", hist.Min)) +
			dimS.Render(" pk") + valS.Render(fmt.Sprintf("%5.1f", hist.Peak))
	} else {
		spark = chart.RenderSparkline(nil, chartWidth, ch.lo, ch.hi, ch.color)
	}

	row := label + " " + value + " " + frameL + spark + frameR + stats

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(totalWidth).
		Render(row)
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	labS := lipgloss.NewStyle().Foreground(colorLabel)

	var status string
	if m.stopped {
		status = lipgloss.NewStyle().Foreground(colorCrit).Render("STOPPED")
	} else {
		status = dimS.Render("next reading in 5-10s")
	}

	keys := dimS.Render("q") + labS.Render(":quit")

	gap := width - lipgloss.Width(status) - lipgloss.Width(keys) - 4
	if gap < 1 {
		gap = 1
	}
	filler := strings.Repeat(" ", gap)

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(status + filler + keys)
}

func fmtDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	mi := d / time.Minute
	d -= mi * time.Minute
	s := d / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, mi, s)
	}
	return fmt.Sprintf("%dm%02ds", mi, s)
}
