package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"problem-data-service/app/server/inits"
	"problem-data-service/app/server/jwt"
	"problem-data-service/app/server/models"
	"problem-data-service/app/server/oauth"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// fakeExchanger 替代真实的 GitHub 客户端
type fakeExchanger struct {
	authorizeURL string
	profile      *oauth.Profile
	err          error
}

func (f *fakeExchanger) AuthorizeURL() string {
	return f.authorizeURL
}

func (f *fakeExchanger) Exchange(_ context.Context, _ string) (*oauth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// newTestApp 构造一个跑在临时数据库文件上的 App
func newTestApp(t *testing.T, oc OAuthExchanger, dataDir string) *App {
	t.Helper()

	db, err := inits.DB(filepath.Join(t.TempDir(), "test.sqlite3"))
	require.NoError(t, err)

	j, err := jwt.New(testSecret)
	require.NoError(t, err)

	return NewApp(zap.NewNop(), db, j, oc, dataDir)
}

// newTestContext 构造一条 GET 请求的 echo 上下文
func newTestContext(t *testing.T, target, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// createUser 直接入库一条用户记录并返回对应的有效令牌
func createUser(t *testing.T, a *App, user *models.User) string {
	t.Helper()

	require.NoError(t, a.db.Create(user).Error)

	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Expires: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	return token
}
