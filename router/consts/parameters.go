package consts

const (
	ParamID = "id"
)
