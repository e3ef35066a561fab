package menuitem

// QueryMenuItemsModel represents filter parameters for querying menu items.
type QueryMenuItemsModel struct {
	Ids           []int64    `json:"ids,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
	AvailableOnly bool       `json:"availableOnly,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}
