package document

// nodeDoc is the on-disk shape of a node. Sizes and edge lists are left
// untyped because TOML, YAML and JSON decode numbers differently; build
// normalizes them.
type nodeDoc struct {
	ID       string     `toml:"id" yaml:"id" json:"id"`
	Kind     string     `toml:"kind" yaml:"kind" json:"kind"`
	Width    any        `toml:"width" yaml:"width" json:"width"`
	Height   any        `toml:"height" yaml:"height" json:"height"`
	Layout   layoutDoc  `toml:"layout" yaml:"layout" json:"layout"`
	Content  contentDoc `toml:"content" yaml:"content" json:"content"`
	Children []nodeDoc  `toml:"children" yaml:"children" json:"children"`
}

type layoutDoc struct {
	Mode      string `toml:"mode" yaml:"mode" json:"mode"`
	Direction string `toml:"direction" yaml:"direction" json:"direction"`
	Justify   string `toml:"justify" yaml:"justify" json:"justify"`
	Align     string `toml:"align" yaml:"align" json:"align"`
	Gap       int    `toml:"gap" yaml:"gap" json:"gap"`
	Wrap      bool   `toml:"wrap" yaml:"wrap" json:"wrap"`
	Columns   int    `toml:"columns" yaml:"columns" json:"columns"`
	Rows      int    `toml:"rows" yaml:"rows" json:"rows"`
	ColumnGap int    `toml:"column_gap" yaml:"column_gap" json:"column_gap"`
	RowGap    int    `toml:"row_gap" yaml:"row_gap" json:"row_gap"`
	X         int    `toml:"x" yaml:"x" json:"x"`
	Y         int    `toml:"y" yaml:"y" json:"y"`
	Padding   any    `toml:"padding" yaml:"padding" json:"padding"`
	Margin    any    `toml:"margin" yaml:"margin" json:"margin"`
	Border    bool   `toml:"border" yaml:"border" json:"border"`
}

type contentDoc struct {
	Label         string    `toml:"label" yaml:"label" json:"label"`
	Text          string    `toml:"text" yaml:"text" json:"text"`
	Value         string    `toml:"value" yaml:"value" json:"value"`
	Placeholder   string    `toml:"placeholder" yaml:"placeholder" json:"placeholder"`
	Icon          string    `toml:"icon" yaml:"icon" json:"icon"`
	IconRight     string    `toml:"icon_right" yaml:"icon_right" json:"icon_right"`
	Badge         string    `toml:"badge" yaml:"badge" json:"badge"`
	IconSeparated bool      `toml:"icon_separated" yaml:"icon_separated" json:"icon_separated"`
	Options       []string  `toml:"options" yaml:"options" json:"options"`
	Items         []itemDoc `toml:"items" yaml:"items" json:"items"`
}

type itemDoc struct {
	Icon      string `toml:"icon" yaml:"icon" json:"icon"`
	Label     string `toml:"label" yaml:"label" json:"label"`
	Hotkey    string `toml:"hotkey" yaml:"hotkey" json:"hotkey"`
	Separator bool   `toml:"separator" yaml:"separator" json:"separator"`
	Depth     int    `toml:"depth" yaml:"depth" json:"depth"`
}
