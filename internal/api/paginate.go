package api

// FetchAll requests pages 1, 2, ... and concatenates them in order until a
// page comes back empty. Any error aborts the whole listing.
func FetchAll[T any](fetchPage func(page int) ([]T, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, err := fetchPage(page)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return all, nil
		}
		all = append(all, items...)
	}
}
