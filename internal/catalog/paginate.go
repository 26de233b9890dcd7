package catalog

// Paginate slices an already filtered and sorted collection into one page.
// Pages are 1-based; a page value below 1 is treated as page 1. A limit of
// zero or less yields an empty window while Total still reflects the full
// collection.
//
// HasMore reports whether a further page actually exists (page*limit < total)
// rather than whether the returned page happens to be full.
func Paginate(products []Product, p Page) ListResult {
	total := len(products)

	page := p.Page
	if page < 1 {
		page = 1
	}

	result := ListResult{
		Products: []Product{},
		Total:    total,
		Page:     page,
		Limit:    p.Limit,
	}
	if p.Limit <= 0 {
		return result
	}

	start := (page - 1) * p.Limit
	if start >= total {
		return result
	}

	end := start + p.Limit
	if end > total {
		end = total
	}

	window := make([]Product, end-start)
	copy(window, products[start:end])

	result.Products = window
	result.HasMore = page*p.Limit < total
	return result
}

// Query runs the full pipeline: filter, stable sort, then paginate.
func Query(products []Product, f Filters, s Sort, p Page) ListResult {
	return Paginate(SortProducts(Filter(products, f), s), p)
}
