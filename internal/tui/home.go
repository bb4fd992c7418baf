package tui

import (
	"context"
	"strings"

	"github.com/blackwell-systems/storefront/internal/catalog"
	"github.com/blackwell-systems/storefront/internal/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// skeletonCount is how many placeholders the home page shows while loading.
const skeletonCount = 8

// noticePrefix introduces the single error notice shown on fetch failure.
const noticePrefix = "Could not load products: "

// listState is the catalog lifecycle for one mount of the home page.
// Transitions are Loading to Failed or Loading to Ready, never backwards.
type listState int

const (
	stateLoading listState = iota
	stateFailed
	stateReady
)

// homeModel is the home page body: title, then skeletons, an error notice,
// or the product grid, strictly mirroring the loader state.
type homeModel struct {
	client *catalog.Client
	logger *log.Logger

	state    listState
	products []catalog.Product
	notice   string

	spin      spinner.Model
	filter    textinput.Model
	filtering bool
}

func newHomeModel(client *catalog.Client, logger *log.Logger) homeModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	ti := textinput.New()
	ti.Placeholder = "filter by title or category"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return homeModel{
		client: client,
		logger: logger,
		state:  stateLoading,
		spin:   sp,
		filter: ti,
	}
}

// init starts the one catalog fetch for this mount plus the spinner tick.
// The first View always observes stateLoading because the fetch result only
// arrives as a later message.
func (h homeModel) init() tea.Cmd {
	return tea.Batch(fetchProducts(h.client, h.logger), h.spin.Tick)
}

func fetchProducts(c *catalog.Client, logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		products, err := c.Fetch(context.Background())
		if err != nil {
			logger.Warn("catalog fetch failed", "url", c.URL(), "err", err)
			return productsErrMsg{err: err}
		}
		logger.Debug("catalog fetched", "url", c.URL(), "count", len(products))
		return productsMsg{products: products}
	}
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsMsg:
		// Terminal states never regress; late or duplicate results are
		// dropped rather than remounting the grid.
		if h.state != stateLoading {
			return h, nil
		}
		h.state = stateReady
		h.products = msg.products
		return h, nil

	case productsErrMsg:
		if h.state != stateLoading {
			return h, nil
		}
		h.state = stateFailed
		h.notice = strings.TrimSpace(msg.err.Error())
		if h.notice == "" {
			h.notice = "something went wrong"
		}
		return h, nil

	case spinner.TickMsg:
		if h.state != stateLoading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spin, cmd = h.spin.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		if !h.filtering {
			return h, nil
		}
		switch msg.String() {
		case "enter", "esc":
			h.filtering = false
			h.filter.Blur()
			return h, nil
		default:
			var cmd tea.Cmd
			h.filter, cmd = h.filter.Update(msg)
			return h, cmd
		}
	}
	return h, nil
}

// startFilter focuses the filter input. Only meaningful in the ready state;
// a loading or failed page has nothing to narrow.
func (h homeModel) startFilter() (homeModel, tea.Cmd) {
	if h.state != stateReady {
		return h, nil
	}
	h.filtering = true
	h.filter.Focus()
	return h, textinput.Blink
}

// visibleProducts applies the filter text to the fetched list. The fetched
// list itself is never mutated.
func (h homeModel) visibleProducts() []catalog.Product {
	query := strings.ToLower(strings.TrimSpace(h.filter.Value()))
	if query == "" {
		return h.products
	}
	var out []catalog.Product
	for _, p := range h.products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			out = append(out, p)
		}
	}
	return out
}

func (h homeModel) view(t theme.Theme, width int) string {
	title := theme.Title(t).Render("Product Catalog")
	subtitle := theme.Body(t).Render("A small storefront, three moods.")

	var body string
	switch h.state {
	case stateLoading:
		status := h.spin.View() + " " + theme.Body(t).Render("Loading products…")
		cells := make([]string, skeletonCount)
		for i := range cells {
			cells[i] = renderSkeleton(t, cardWidth(t, width))
		}
		body = status + "\n\n" + renderGrid(t, width, cells)

	case stateFailed:
		body = theme.Notice(t).Render(noticePrefix + h.notice)

	case stateReady:
		visible := h.visibleProducts()
		cells := make([]string, len(visible))
		for i, p := range visible {
			cells[i] = renderCard(t, p, cardWidth(t, width))
		}
		// An empty catalog renders an empty grid, no special message.
		body = renderGrid(t, width, cells)
		if h.filtering || h.filter.Value() != "" {
			body = h.filter.View() + "\n\n" + body
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body)
}
