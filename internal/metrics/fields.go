package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrOperation = "operation"
)

// Query operation names.
const (
	OpAll        = "all"
	OpByName     = "player"
	OpByCountry  = "country"
	OpByClub     = "club"
	OpAttributes = "attributes"
	OpNames      = "names"
)
