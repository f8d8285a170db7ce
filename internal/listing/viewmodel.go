package listing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/command"
	"github.com/five82/satchel/internal/debounce"
	"github.com/five82/satchel/internal/state"
	"github.com/five82/satchel/internal/storefront"
)

// CartRoute is the route OnCart navigates to.
const CartRoute = "/shop/cart"

// handlerWindow is the debounce window for load-more and refresh.
const handlerWindow = 300 * time.Millisecond

var errFetchFailed = errors.New("failed to load products")

// ProductsCommand is the fetch command the controller drives.
// *command.FetchProducts implements it.
type ProductsCommand interface {
	Execute(ctx context.Context, query command.FetchProductsQuery) *storefront.ProductListResponse
	LastError() error
}

// Navigator pushes routes.
type Navigator interface {
	Push(route string) error
}

// Notifier presents modal feedback.
type Notifier interface {
	ShowError(title, content string)
	ShowItem(item catalog.ProductListItem)
}

// SortKey selects the list order.
type SortKey string

const (
	SortNone  SortKey = ""
	SortName  SortKey = "name"
	SortPrice SortKey = "price"
)

// SearchState describes the keyword search for the UI.
type SearchState string

const (
	SearchIdle      SearchState = ""
	SearchSearching SearchState = "searching"
	SearchSearched  SearchState = "searched"
	SearchEmpty     SearchState = "empty"
)

// Props configure a ViewModel. Products, when non-nil, take precedence over
// the store.
type Props struct {
	Command   ProductsCommand
	Store     *state.Store
	Products  []catalog.Product
	Navigator Navigator
	Notifier  Notifier
	PageLimit int
	Keyword   string
	Logger    *logrus.Logger
}

// Status is the set of UI flags.
type Status struct {
	Initialized bool
	Loading     bool
	Refreshing  bool
	AddingItems bool
	ShowModal   bool
	ShowFilter  bool
	Errors      []string
}

// ViewModel is the product-list controller.
type ViewModel struct {
	props Props
	log   *logrus.Logger

	loadMore *debounce.Debouncer
	refresh  *debounce.Debouncer

	mu         sync.Mutex
	status     Status
	keyword    string
	sortKey    SortKey
	page       *catalog.Page
	selected   *catalog.ProductListItem
	filters    []catalog.FilterList
	modalGroup *catalog.FilterList
	checked    map[string]bool
}

// New builds a ViewModel. It does not fetch; call Initialize.
func New(props Props) *ViewModel {
	logger := props.Logger
	if logger == nil {
		logger = logrus.New()
	}
	limit := props.PageLimit
	if limit <= 0 {
		limit = catalog.DefaultPageLimit
	}
	props.PageLimit = limit
	return &ViewModel{
		props:    props,
		log:      logger,
		loadMore: debounce.New(handlerWindow),
		refresh:  debounce.New(handlerWindow),
		keyword:  strings.TrimSpace(props.Keyword),
		page:     catalog.NewPage(limit),
		checked:  make(map[string]bool),
	}
}

// Initialize loads the first page and adopts the store's filter groups.
func (vm *ViewModel) Initialize(ctx context.Context) error {
	vm.mu.Lock()
	vm.status.Loading = true
	limit := vm.page.Limit
	vm.mu.Unlock()

	err := vm.FetchProducts(ctx, 0, limit, false)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.props.Store != nil {
		vm.filters = vm.props.Store.Snapshot().Filters
	}
	vm.status.Initialized = true
	vm.status.Loading = false
	vm.log.WithField("initialized", true).Debug("product list initialized")
	return err
}

// Dispose releases per-screen state.
func (vm *ViewModel) Dispose() {
	vm.loadMore.Reset()
	vm.refresh.Reset()

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.selected = nil
	vm.modalGroup = nil
}

// FetchProducts runs the fetch command for one page. Failures are shown
// through the Notifier and returned.
func (vm *ViewModel) FetchProducts(ctx context.Context, offset, limit int, fetchMore bool) error {
	if vm.props.Command == nil {
		return fmt.Errorf("product list has no fetch command")
	}
	if limit <= 0 {
		limit = vm.props.PageLimit
	}

	resp := vm.props.Command.Execute(ctx, command.FetchProductsQuery{
		Offset: offset,
		Limit:  limit,
		Append: fetchMore,
	})
	if resp == nil {
		err := vm.props.Command.LastError()
		if err == nil {
			err = errFetchFailed
		}
		vm.mu.Lock()
		vm.status.Errors = append(vm.status.Errors, err.Error())
		vm.mu.Unlock()
		if vm.props.Notifier != nil {
			vm.props.Notifier.ShowError("Error", err.Error())
		}
		return err
	}

	p := resp.Pagination
	if p.Limit <= 0 {
		p.Limit = limit
	}
	if p.Offset == 0 && offset > 0 {
		p.Offset = offset
	}
	vm.mu.Lock()
	vm.page.SetCurrent(p.Offset, p.Limit, p.Total)
	vm.mu.Unlock()
	return nil
}

// Items returns the current list: supplied products, else the store's,
// else empty. The active sort order is applied.
func (vm *ViewModel) Items() []catalog.ProductListItem {
	var products []catalog.Product
	switch {
	case vm.props.Products != nil:
		products = vm.props.Products
	case vm.props.Store != nil:
		products = vm.props.Store.Snapshot().Products
	}
	items := catalog.ToListItems(products)

	vm.mu.Lock()
	key := vm.sortKey
	vm.mu.Unlock()
	sortItems(items, key)
	return items
}

// VisibleItems returns Items narrowed by the keyword.
func (vm *ViewModel) VisibleItems() []catalog.ProductListItem {
	return vm.FilterKeyword(vm.Items())
}

// FilterKeyword keeps the items whose title contains the keyword,
// ignoring case. items may be reused.
func (vm *ViewModel) FilterKeyword(items []catalog.ProductListItem) []catalog.ProductListItem {
	keyword := strings.ToLower(vm.Keyword())
	if keyword == "" {
		return items
	}
	out := items[:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), keyword) {
			out = append(out, item)
		}
	}
	return out
}

// TextBooks returns the textbook items.
func (vm *ViewModel) TextBooks() []catalog.ProductListItem {
	return vm.bySource(catalog.SourceTextbook)
}

// Workbooks returns the workbook items.
func (vm *ViewModel) Workbooks() []catalog.ProductListItem {
	return vm.bySource(catalog.SourceWorkbook)
}

// Handouts returns the handout items.
func (vm *ViewModel) Handouts() []catalog.ProductListItem {
	return vm.bySource(catalog.SourceHandout)
}

func (vm *ViewModel) bySource(source catalog.SourceType) []catalog.ProductListItem {
	var out []catalog.ProductListItem
	for _, item := range vm.Items() {
		if item.Product.SourceType == source {
			out = append(out, item)
		}
	}
	return out
}

// Sorting sets the list order and returns the re-sorted items. "name"
// orders by ID and "price" by price, both ascending. Unknown keys leave the
// order unchanged and return nil.
func (vm *ViewModel) Sorting(key string) []catalog.ProductListItem {
	k := SortKey(strings.ToLower(strings.TrimSpace(key)))
	switch k {
	case SortName, SortPrice:
	default:
		return nil
	}
	vm.mu.Lock()
	vm.sortKey = k
	vm.mu.Unlock()
	return vm.Items()
}

// SortKey returns the active order.
func (vm *ViewModel) SortKey() SortKey {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.sortKey
}

func sortItems(items []catalog.ProductListItem, key SortKey) {
	switch key {
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].ID < items[j].ID
		})
	case SortPrice:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Product.Price != items[j].Product.Price {
				return items[i].Product.Price < items[j].Product.Price
			}
			return items[i].ID < items[j].ID
		})
	}
}

// Filters returns the store's filter groups when a store is attached,
// otherwise the groups captured at initialization.
func (vm *ViewModel) Filters() []catalog.FilterList {
	if vm.props.Store != nil {
		return vm.props.Store.Snapshot().Filters
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return catalog.CloneFilters(vm.filters)
}

// CheckboxList returns the static checkbox groups.
func (vm *ViewModel) CheckboxList() []catalog.FilterList {
	return catalog.CheckboxList()
}

// ToggleCheck flips one checkbox in a filter group.
func (vm *ViewModel) ToggleCheck(groupID int, label string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	k := checkKey(groupID, label)
	vm.checked[k] = !vm.checked[k]
	if !vm.checked[k] {
		delete(vm.checked, k)
	}
	return vm.checked[k]
}

// Checked reports whether a checkbox is selected.
func (vm *ViewModel) Checked(groupID int, label string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.checked[checkKey(groupID, label)]
}

func checkKey(groupID int, label string) string {
	return fmt.Sprintf("%d:%s", groupID, label)
}

// OnResetFilter clears the keyword and every checkbox.
func (vm *ViewModel) OnResetFilter() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.keyword = ""
	vm.checked = make(map[string]bool)
}

// Pagination returns a copy of the current page.
func (vm *ViewModel) Pagination() catalog.Page {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return *vm.page
}

// UpdatePageChange moves the page window to pageIndex and returns it.
func (vm *ViewModel) UpdatePageChange(pageIndex int) catalog.Page {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	next := vm.page.Next(pageIndex)
	vm.page.SetCurrent(next.Offset, next.Limit, next.Total)
	vm.log.WithField("page_index", pageIndex).Debug("page changed")
	return *vm.page
}

// GoToPage moves to pageIndex and fetches that page.
func (vm *ViewModel) GoToPage(ctx context.Context, pageIndex int) error {
	page := vm.UpdatePageChange(pageIndex)
	vm.mu.Lock()
	vm.status.Loading = true
	vm.mu.Unlock()

	err := vm.FetchProducts(ctx, page.Offset, page.Limit, false)

	vm.mu.Lock()
	vm.status.Loading = false
	vm.mu.Unlock()
	return err
}

// SetKeyword stores the search keyword.
func (vm *ViewModel) SetKeyword(keyword string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.keyword = strings.TrimSpace(keyword)
}

// Keyword returns the search keyword.
func (vm *ViewModel) Keyword() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.keyword
}

// SearchState derives the search indicator from the flags and results.
func (vm *ViewModel) SearchState() SearchState {
	status := vm.Status()
	if status.Loading {
		return SearchSearching
	}
	if !status.Initialized {
		return SearchIdle
	}
	if len(vm.VisibleItems()) == 0 {
		return SearchEmpty
	}
	if vm.Keyword() != "" {
		return SearchSearched
	}
	return SearchIdle
}

// Selected returns the last clicked item, if any.
func (vm *ViewModel) Selected() (catalog.ProductListItem, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.selected == nil {
		return catalog.ProductListItem{}, false
	}
	return *vm.selected, true
}

// OnItemClick selects item and shows its details.
func (vm *ViewModel) OnItemClick(item catalog.ProductListItem) {
	vm.mu.Lock()
	selected := item
	vm.selected = &selected
	vm.mu.Unlock()
	if vm.props.Notifier != nil {
		vm.props.Notifier.ShowItem(item)
	}
}

// OnEmptyClick handles a click on the empty-list placeholder by dropping the
// keyword so the full list shows again.
func (vm *ViewModel) OnEmptyClick() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.log.WithField("keyword", vm.keyword).Debug("empty state clicked")
	vm.keyword = ""
}

// OnCart navigates to the cart.
func (vm *ViewModel) OnCart(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if vm.props.Navigator == nil {
		return fmt.Errorf("no navigator configured")
	}
	if err := vm.props.Navigator.Push(CartRoute); err != nil {
		return fmt.Errorf("navigate to cart: %w", err)
	}
	return nil
}

// OnShowModal toggles the filter modal for group.
func (vm *ViewModel) OnShowModal(group catalog.FilterList) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.status.ShowModal = !vm.status.ShowModal
	if vm.status.ShowModal {
		g := group
		vm.modalGroup = &g
	} else {
		vm.modalGroup = nil
	}
}

// ModalGroup returns the group shown by the filter modal.
func (vm *ViewModel) ModalGroup() (catalog.FilterList, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.modalGroup == nil {
		return catalog.FilterList{}, false
	}
	return *vm.modalGroup, true
}

// OnShowMobileFilter toggles the filter drawer.
func (vm *ViewModel) OnShowMobileFilter() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.status.ShowFilter = !vm.status.ShowFilter
}

// OnLoadMore appends the next page. Calls within 300ms of the previous call
// are dropped; it reports whether the load ran.
func (vm *ViewModel) OnLoadMore(ctx context.Context) bool {
	return vm.loadMore.Do(func() {
		vm.mu.Lock()
		vm.status.AddingItems = true
		page := *vm.page
		vm.mu.Unlock()

		if page.HasMore() {
			_ = vm.FetchProducts(ctx, page.NextOffset(), page.Limit, true)
		}

		vm.mu.Lock()
		vm.status.AddingItems = false
		vm.mu.Unlock()
	})
}

// OnRefresh reloads the first page. Calls within 300ms of the previous call
// are dropped; it reports whether the refresh ran.
func (vm *ViewModel) OnRefresh(ctx context.Context) bool {
	return vm.refresh.Do(func() {
		vm.mu.Lock()
		vm.status.Refreshing = true
		limit := vm.page.Limit
		vm.mu.Unlock()

		_ = vm.FetchProducts(ctx, 0, limit, false)

		vm.mu.Lock()
		vm.status.Refreshing = false
		vm.mu.Unlock()
	})
}

// Status returns a copy of the UI flags.
func (vm *ViewModel) Status() Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s := vm.status
	s.Errors = append([]string(nil), vm.status.Errors...)
	return s
}

// ClearErrors drops the recorded fetch errors.
func (vm *ViewModel) ClearErrors() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.status.Errors = nil
}
