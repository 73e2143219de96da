package app

// Latest returns the highest known version of req.Package, or a
// user-facing message if the package is unknown.
func (s Service) Latest(req LatestRequest) (LatestResult, error) {
	index, _, err := s.IndexSource.Load(req.IndexPath, req.Mode)
	if err != nil {
		return LatestResult{}, err
	}

	versions, ok := index[req.Package]
	if !ok || len(versions) == 0 {
		return LatestResult{
			Found:   false,
			Message: "There is no package named '" + req.Package + "'",
		}, nil
	}

	return LatestResult{Found: true, Version: versions[len(versions)-1]}, nil
}
