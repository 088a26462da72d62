package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Parser  ParserConfig  `toml:"parser"`
	Scoring ScoringConfig `toml:"scoring"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
	MCPEnabled  bool `toml:"mcp_enabled"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	AttackFile  string `toml:"attack_file"`
	DefenseFile string `toml:"defense_file"`
	DPSFile     string `toml:"dps_file"`
	HistoryDB   string `toml:"history_db"`
}

// ParserConfig 表头识别配置
type ParserConfig struct {
	AliasesFile string `toml:"aliases_file"` // 相对数据目录
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	DefenseFormula string `toml:"defense_formula"` // divide|multiply
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
	Path          string
}

// 环境变量覆盖
const (
	EnvDataDir        = "POKETOOL_DATA_DIR"
	EnvDefenseFormula = "POKETOOL_DEFENSE_FORMULA"
)

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8501,
			DevMode:     false,
			OpenBrowser: true,
			MCPEnabled:  true,
		},
		Data: DataConfig{
			DataDir:     "data",
			AttackFile:  "Att.xlsx",
			DefenseFile: "Def.xlsx",
			DPSFile:     "DPS.xlsx",
			HistoryDB:   "history.db",
		},
		Parser: ParserConfig{
			AliasesFile: "field_aliases.yaml",
		},
		Scoring: ScoringConfig{
			DefenseFormula: "divide",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFile(filepath.Join(exeDir, "config.toml"))
}

// LoadConfigFile 从指定路径加载配置；文件不存在时使用默认配置
func LoadConfigFile(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, info, err
	}
	if err == nil {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	// 环境变量覆盖
	if v := os.Getenv(EnvDataDir); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv(EnvDefenseFormula); v != "" {
		config.Scoring.DefenseFormula = v
	}

	return config, info, nil
}

// LoadConfig 从 config.toml 加载配置
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 保存配置到指定路径
func SaveConfig(config *AppConfig, configPath string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// DataDirPath 数据目录的绝对位置；相对路径以可执行文件目录为基准
func DataDirPath(config *AppConfig) string {
	if filepath.IsAbs(config.Data.DataDir) {
		return config.Data.DataDir
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir)
}

// EnsureDataDir 确保数据目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := DataDirPath(config)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDataPath 数据目录下的文件路径
func GetDataPath(config *AppConfig, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(DataDirPath(config), filename)
}
