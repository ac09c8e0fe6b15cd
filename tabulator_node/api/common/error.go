package common

// Возможные коды ошибок.
var (
	BadUnmarshalRequestErrorCode = "bad_unmarshal"
	BadExpressionErrorCode       = "bad_expression"
	BadModeErrorCode             = "bad_mode"
	BadBoundsErrorCode           = "bad_bounds"
	BadNameErrorCode             = "bad_name"
	NameNotFoundErrorCode        = "name_not_found"
	NameAlreadyExistsErrorCode   = "name_already_exists"
	ETCDErrorCode                = "etcd_error"
	CacheErrorCode               = "cache_error"
	ExportErrorCode              = "export_error"
	RenderGraphErrorCode         = "render_graph_error"
	InternalErrorCode            = "internal_error"
)
