package review

import "context"

type Service struct {
	lister ReviewLister
}

func NewService(lister ReviewLister) *Service {
	return &Service{lister: lister}
}

// Render runs one section through its fetch and returns the display state.
func (s *Service) Render(ctx context.Context, propertyID, acceptLanguage string) View {
	sec := NewSection(propertyID, s.lister)
	defer sec.Close()

	sec.Load(ctx)
	return sec.View(DateLayout(acceptLanguage))
}
