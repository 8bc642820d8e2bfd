package storefront

// Search is the dedicated search screen.
type Search struct {
	*listSession
}

// NewSearch builds a search screen session.
func NewSearch(params ListParams) (*Search, error) {
	session, err := newListSession(params, ScreenSearch)
	if err != nil {
		return nil, err
	}
	return &Search{listSession: session}, nil
}

// ClearQuery resets the search text.
func (s *Search) ClearQuery() {
	s.SetQuery("")
}

// Teardown drops any fetch still in flight.
func (s *Search) Teardown() {
	s.dispose()
}
