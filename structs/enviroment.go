package structs

type EnviromentModel struct {
	App App
	Log Log
}

type App struct {
	Name string
}

type Log struct {
	Level          string
	Format         string
	FileEnable     int
	FileDir        string
	ElkEnable      int
	ElkIndex       string
	ElkURL         string
	LogstashEnable int
	LogstashURL    string
	LogstashIndex  string
}
