package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/gallery"
)

const listHeight = 15

var (
	accent = lipgloss.Color("#B08968")
	muted  = lipgloss.Color("#8A8A8A")
	danger = lipgloss.Color("#E53935")
)

type browseStyles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Cursor    lipgloss.Style
	Item      lipgloss.Style
	Lightbox  lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
}

func defaultBrowseStyles() browseStyles {
	return browseStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Item:      lipgloss.NewStyle(),
		Lightbox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Error:     lipgloss.NewStyle().Foreground(danger),
	}
}

// itemsMsg carries the loaded portfolio.
type itemsMsg struct {
	items []portfolio.Item
	err   error
}

// imageMsg reports a finished full-image download.
type imageMsg struct {
	seq uint64
	url string
	err error
}

// browseModel is the terminal gallery. It drives the same filter, lightbox
// and prefetch state as the website.
type browseModel struct {
	ctx        context.Context
	load       func(ctx context.Context) ([]portfolio.Item, error)
	prefetcher *gallery.Prefetcher
	lightbox   *gallery.Lightbox
	gallery    *gallery.Gallery
	seq        gallery.Sequence

	cursor  int
	loading bool
	err     error
	status  string
	styles  browseStyles
}

func newBrowseModel(ctx context.Context, load func(ctx context.Context) ([]portfolio.Item, error), prefetcher *gallery.Prefetcher) *browseModel {
	return &browseModel{
		ctx:        ctx,
		load:       load,
		prefetcher: prefetcher,
		lightbox:   gallery.NewLightbox(prefetcher),
		loading:    true,
		styles:     defaultBrowseStyles(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.fetchItems()
}

func (m *browseModel) fetchItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.load(m.ctx)
		return itemsMsg{items: items, err: err}
	}
}

// fetchImage downloads the open image. Only the newest request is applied.
func (m *browseModel) fetchImage() tea.Cmd {
	url := m.lightbox.CurrentURL()
	if url == "" {
		return nil
	}
	n := m.seq.Next()
	return func() tea.Msg {
		err := m.prefetcher.Prefetch(m.ctx, url)
		return imageMsg{seq: n, url: url, err: err}
	}
}

func (m *browseModel) visible() []portfolio.Item {
	if m.gallery == nil {
		return nil
	}
	return m.gallery.Visible()
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.gallery = gallery.New(msg.items, nil)
			m.cursor = 0
		}
		return m, nil

	case imageMsg:
		if !m.seq.Latest(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.lightbox.ImageFailed(m.ctx, msg.url, msg.err)
			m.status = "이미지를 불러오지 못했습니다: " + msg.err.Error()
			return m, nil
		}
		if took, ok := m.lightbox.ImageLoaded(m.ctx, msg.url); ok {
			m.status = fmt.Sprintf("loaded in %s", took.Round(time.Millisecond))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if m.lightbox.IsOpen() {
		var k gallery.Key
		switch key {
		case "left", "h":
			k = gallery.KeyLeft
		case "right", "l":
			k = gallery.KeyRight
		case "esc":
			k = gallery.KeyEscape
		default:
			return m, nil
		}
		m.lightbox.HandleKey(k)
		m.status = ""
		if m.lightbox.IsOpen() {
			return m, m.fetchImage()
		}
		return m, nil
	}

	switch key {
	case "r":
		if m.err != nil {
			m.err = nil
			m.loading = true
			return m, m.fetchItems()
		}
	}
	if m.gallery == nil {
		return m, nil
	}

	switch key {
	case "tab", "shift+tab":
		m.gallery.Select(cycle(m.gallery.Categories(), m.gallery.Active(), key == "tab"))
		m.cursor = 0
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.lightbox.Open(m.visible(), m.cursor) {
			return m, m.fetchImage()
		}
	}
	return m, nil
}

// cycle returns the label after (or before) current, wrapping around.
func cycle(labels []string, current string, forward bool) string {
	for i, l := range labels {
		if l != current {
			continue
		}
		if forward {
			return labels[(i+1)%len(labels)]
		}
		return labels[(i-1+len(labels))%len(labels)]
	}
	return labels[0]
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Family Soo · 포트폴리오"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("불러오는 중...\n")
		return b.String()
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("포트폴리오를 불러오는데 실패했습니다. " + m.err.Error()))
		b.WriteString(m.styles.Help.Render("\nr 다시 시도 · q 종료"))
		return b.String()
	}

	if m.lightbox.IsOpen() {
		b.WriteString(m.lightboxView())
	} else {
		b.WriteString(m.gridView())
	}

	if m.status != "" {
		b.WriteString("\n" + m.styles.Help.Render(m.status))
	}
	return b.String()
}

func (m *browseModel) gridView() string {
	var b strings.Builder

	tabs := make([]string, 0, len(m.gallery.Categories()))
	for _, c := range m.gallery.Categories() {
		if c == m.gallery.Active() {
			tabs = append(tabs, m.styles.ActiveTab.Render(c))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(c))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	items := m.visible()
	if len(items) == 0 {
		b.WriteString("등록된 작품이 없습니다.\n")
	}

	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	for i := start; i < len(items) && i < start+listHeight; i++ {
		it := items[i]
		line := fmt.Sprintf("%-24s %-10s %s", it.Title, it.Category, it.AspectRatio)
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("› " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d개의 작품 · tab 분류 · enter 보기 · q 종료", len(items))))
	return b.String()
}

func (m *browseModel) lightboxView() string {
	it, _ := m.lightbox.Current()
	state := "불러오는 중..."
	if m.lightbox.Loaded() {
		state = "완료"
	}

	body := fmt.Sprintf("%s\n%d / %d\n%s\n%s",
		it.Title,
		m.lightbox.Index()+1,
		m.lightbox.Len(),
		m.lightbox.CurrentURL(),
		state,
	)
	return m.styles.Lightbox.Render(body) + "\n" + m.styles.Help.Render("← → 이동 · esc 닫기")
}
