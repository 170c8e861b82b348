package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	githubAuthorizeURL   = "https://github.com/login/oauth/authorize"
	githubAccessTokenURL = "https://github.com/login/oauth/access_token"
	githubUserURL        = "https://api.github.com/user"

	// 两次外呼共用的超时，上游没有规定，取一个保守值
	requestTimeout = 10 * time.Second
)

// Client 负责和 GitHub 的 OAuth 接口交互：换取 access token ，再拉取用户资料
type Client struct {
	clientID     string
	clientSecret string

	httpClient *http.Client

	// 端点可覆盖，测试时指向本地假服务
	authorizeURL   string
	accessTokenURL string
	userURL        string
}

// Profile GitHub 返回的用户资料，只保留需要入库的字段
type Profile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func New(clientID, clientSecret string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("client id or secret is empty")
	}

	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		authorizeURL:   githubAuthorizeURL,
		accessTokenURL: githubAccessTokenURL,
		userURL:        githubUserURL,
	}, nil
}

// AuthorizeURL 构造引导用户跳转的授权地址
func (c *Client) AuthorizeURL() string {
	return fmt.Sprintf("%s?client_id=%s", c.authorizeURL, c.clientID)
}

// Exchange 用授权码换取 access token ，再用 token 拉取用户资料
func (c *Client) Exchange(ctx context.Context, code string) (*Profile, error) {
	accessToken, err := c.exchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	profile, err := c.fetchProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	return profile, nil
}

func (c *Client) exchangeCode(ctx context.Context, code string) (string, error) {
	// GitHub 的这个接口接受 JSON 请求体
	reqBody, err := json.Marshal(map[string]string{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"code":          code,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.accessTokenURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("access token endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode access token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("missing access token")
	}

	return payload.AccessToken, nil
}

func (c *Client) fetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// GitHub 的用户接口用的是 token 方案而不是 Bearer
	req.Header.Set("Authorization", "token "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user endpoint returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode user profile: %w", err)
	}
	if profile.ID == 0 {
		return nil, errors.New("empty user profile")
	}

	return &profile, nil
}
