package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	faceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F2C94C")).
			Padding(0, 2)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 2)

	historyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F25D94"))
)

const (
	spinFrames   = 10
	spinInterval = 30 * time.Millisecond
	historyLimit = 8
)

type spinMsg struct{}

// rollForm is the parsed state of the three input fields.
type rollForm struct {
	num   int
	sides int
	seed  *int64
}

// parseRollForm validates the raw field text. Empty num/sides fall back to
// the defaults shown in the placeholders; an empty seed means entropy.
func parseRollForm(numText, sidesText, seedText string) (rollForm, error) {
	form := rollForm{num: 1, sides: 6}

	if s := strings.TrimSpace(numText); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return form, fmt.Errorf("number of dice must be an integer")
		}
		form.num = n
	}
	if s := strings.TrimSpace(sidesText); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return form, fmt.Errorf("sides must be an integer")
		}
		form.sides = n
	}
	if s := strings.TrimSpace(seedText); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return form, fmt.Errorf("seed must be an integer")
		}
		form.seed = &n
	}

	if form.num < 1 {
		return form, fmt.Errorf("number of dice must be at least 1")
	}
	if form.sides < dice.MinSides {
		return form, fmt.Errorf("a die must have at least %d sides", dice.MinSides)
	}

	return form, nil
}

// faceFor renders an outcome as a unicode pip face when the die is a d6,
// otherwise as its number.
func faceFor(outcome, sides int) string {
	if sides == len(dice.PipFaces) && outcome >= 1 && outcome <= len(dice.PipFaces) {
		return dice.PipFaces[outcome-1]
	}
	return strconv.Itoa(outcome)
}

type rollerModel struct {
	numInput   textinput.Model
	sidesInput textinput.Model
	seedInput  textinput.Model
	focus      int
	sumMode    bool

	// roller persists between rolls so an unseeded session keeps walking
	// one sequence; it is rebuilt when the seed or sides fields change.
	roller      *dice.Roller
	rollerSeed  string
	rollerSides int

	face    string
	result  string
	status  string
	history []string

	spinning int
	pending  rollForm
}

func newRollerModel() rollerModel {
	num := textinput.New()
	num.Placeholder = "1"
	num.CharLimit = 4
	num.Width = 6
	num.Focus()
	if viper.IsSet("num") {
		num.SetValue(strconv.Itoa(viper.GetInt("num")))
	}

	sides := textinput.New()
	sides.Placeholder = "6"
	sides.CharLimit = 4
	sides.Width = 6
	if viper.IsSet("sides") {
		sides.SetValue(strconv.Itoa(viper.GetInt("sides")))
	}

	seed := textinput.New()
	seed.Placeholder = "random"
	seed.CharLimit = 20
	seed.Width = 12

	return rollerModel{
		numInput:   num,
		sidesInput: sides,
		seedInput:  seed,
		face:       dice.PipFaces[0],
		status:     "Ready",
	}
}

func (m *rollerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *rollerModel) inputs() []*textinput.Model {
	return []*textinput.Model{&m.numInput, &m.sidesInput, &m.seedInput}
}

func (m *rollerModel) setFocus(idx int) {
	inputs := m.inputs()
	m.focus = (idx + len(inputs)) % len(inputs)
	for i, in := range inputs {
		if i == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// startRoll validates the form and kicks off the spin animation; the actual
// draw happens when the animation finishes.
func (m *rollerModel) startRoll() tea.Cmd {
	form, err := parseRollForm(m.numInput.Value(), m.sidesInput.Value(), m.seedInput.Value())
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return nil
	}

	seedText := strings.TrimSpace(m.seedInput.Value())
	if m.roller == nil || seedText != m.rollerSeed || form.sides != m.rollerSides {
		var opts []dice.Option
		if form.sides == 6 {
			opts = append(opts, dice.WithDie(dice.DefaultDie()))
		} else {
			die, err := dice.NewDie(form.sides)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				return nil
			}
			opts = append(opts, dice.WithDie(die))
		}
		if form.seed != nil {
			opts = append(opts, dice.WithSeed(*form.seed))
		}

		roller, err := dice.NewRoller(opts...)
		if err != nil {
			m.status = errorStyle.Render(err.Error())
			return nil
		}
		m.roller = roller
		m.rollerSeed = seedText
		m.rollerSides = form.sides
	}

	m.pending = form
	m.spinning = spinFrames
	m.status = "Rolling…"
	return spinTick()
}

func spinTick() tea.Cmd {
	return tea.Tick(spinInterval, func(time.Time) tea.Msg {
		return spinMsg{}
	})
}

// finishRoll performs the pending draw and renders the result.
func (m *rollerModel) finishRoll() {
	res, err := m.roller.Roll(m.pending.num)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}

	last := res.Outcomes[len(res.Outcomes)-1]
	m.face = faceFor(last, m.pending.sides)

	parts := make([]string, len(res.Outcomes))
	for i, v := range res.Outcomes {
		parts[i] = strconv.Itoa(v)
	}

	switch {
	case m.sumMode && m.pending.num > 1:
		m.result = fmt.Sprintf("%s = %d", strings.Join(parts, " + "), res.Total)
	case m.pending.num == 1:
		m.result = parts[0]
	default:
		m.result = strings.Join(parts, ", ")
	}

	entry := fmt.Sprintf("%dd%d → %s", m.pending.num, m.pending.sides, m.result)
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}

	m.status = "Ready"
}

func (m *rollerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinMsg:
		if m.spinning <= 0 {
			return m, nil
		}
		m.spinning--
		if m.spinning == 0 {
			m.finishRoll()
			return m, nil
		}
		m.face = dice.PipFaces[(spinFrames-m.spinning)%len(dice.PipFaces)]
		return m, spinTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+s":
			m.sumMode = !m.sumMode
			return m, nil
		case "enter":
			if m.spinning > 0 {
				return m, nil
			}
			return m, m.startRoll()
		}
	}

	input := m.inputs()[m.focus]
	updated, cmd := input.Update(msg)
	*input = updated
	return m, cmd
}

func (m *rollerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dice Rolling Simulator"))
	b.WriteString("\n\n")

	b.WriteString(faceStyle.Render(m.face))
	b.WriteString("\n\n")

	sumState := "off"
	if m.sumMode {
		sumState = "on"
	}
	b.WriteString(fmt.Sprintf(
		"Dice: %s  Sides: %s  Seed: %s  Sum: %s\n",
		m.numInput.View(), m.sidesInput.View(), m.seedInput.View(), sumState,
	))
	b.WriteString(infoStyle.Render("tab: next field · enter: roll · ctrl+s: toggle sum · esc: quit"))
	b.WriteString("\n\n")

	result := m.result
	if result == "" {
		result = "—"
	}
	b.WriteString(resultBoxStyle.Render("Result: " + result))
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString(historyBoxStyle.Render(strings.Join(m.history, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(m.status)
	b.WriteString("\n")

	return b.String()
}

// RunTUI opens the interactive roll screen and blocks until the user quits.
func RunTUI() error {
	m := newRollerModel()
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
