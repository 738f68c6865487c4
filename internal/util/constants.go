package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 目录数据源类型
const (
	SourceHTTP  = "http"
	SourceLocal = "local"
	SourceMinio = "minio"
	SourceOSS   = "oss"
)

// 目录文件名。courses-index.json 和 career-paths.json 是旧版站点遗留的
// 文件名，首选文件取不到时回退使用。
const (
	CoursesFileName       = "courses.json"
	CoursesLegacyFileName = "courses-index.json"
	CategoriesFileName    = "categories.json"
	PathsFileName         = "paths.json"
	PathsLegacyFileName   = "career-paths.json"
	ExternalFileName      = "external-resources.json"
)
