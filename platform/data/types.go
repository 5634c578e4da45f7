package data

// Types names the JSON kind of a script result.
type Types string

const (
	NONE   Types = "none"
	BOOL   Types = "bool"
	INT    Types = "int"
	FLOAT  Types = "float"
	STRING Types = "string"
	LIST   Types = "list"
	MAP    Types = "map"
)
