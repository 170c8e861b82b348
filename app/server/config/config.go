package config

type Config struct {
	System struct {
		IsProd  bool   // 是否为生产环境
		Listen  string `env:"LISTEN" envDefault:":8000"`       // 监听地址
		DBPath  string `env:"DB_PATH" envDefault:"db.sqlite3"` // SQLite 数据库文件路径
		DataDir string `env:"DATA_DIR,required,notEmpty"`      // 题目数据根目录
	}
	Security struct {
		SecretKey    string `env:"SECRET_KEY,required,notEmpty"`    // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效
		ClientID     string `env:"CLIENT_ID,required,notEmpty"`     // GitHub OAuth App 的 Client ID
		ClientSecret string `env:"CLIENT_SECRET,required,notEmpty"` // GitHub OAuth App 的 Client Secret
	}
}
