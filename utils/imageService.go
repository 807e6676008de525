package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"skillforge/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadProfileImage pushes an uploaded picture to the external image host
// and returns the hosted URL.
func UploadProfileImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"key":   config.AppConfig.ImageHostKey,
			"name":  uuid.NewString(),
			"image": base64.StdEncoding.EncodeToString(data),
		}).
		Post(config.AppConfig.ImageHostURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode())
	}

	var hostResp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &hostResp); err != nil {
		return "", err
	}
	if hostResp.Data.URL == "" {
		return "", fmt.Errorf("image host response missing url")
	}

	return hostResp.Data.URL, nil
}
