package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) ProblemList(c echo.Context) error {
	// 抓取 user 信息（认证），需要读权限
	_, err, statusCode := a.authUserWithCapability(c, capabilityRead)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	entries, err := os.ReadDir(a.dataDir)
	if err != nil {
		a.l.Error("failed to read data dir", zap.String("dataDir", a.dataDir), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 只认数字命名的目录，其他的跳过
	problems := []int{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			a.l.Warn("skipping non-numeric problem dir", zap.String("name", entry.Name()))
			continue
		}
		problems = append(problems, pid)
	}
	sort.Ints(problems)

	return c.JSON(http.StatusOK, problems)
}

func (a *App) ProblemFiles(c echo.Context) error {
	// 抓取 user 信息（认证），需要读权限
	_, err, statusCode := a.authUserWithCapability(c, capabilityRead)
	if err != nil {
		a.l.Error("failed to get user", zap.Error(err))
		return a.er(c, statusCode)
	}

	pid, err := strconv.Atoi(c.Param("pid"))
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	entries, err := os.ReadDir(filepath.Join(a.dataDir, strconv.Itoa(pid)))
	if err != nil {
		if os.IsNotExist(err) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to read problem dir", zap.Int("pid", pid), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 只要文件，不要子目录； ReadDir 已经按名称排好序
	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	return c.JSON(http.StatusOK, files)
}
