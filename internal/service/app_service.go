package service

import (
	"fmt"

	"image-hub-server/internal/repository"
)

// AppService 聚合全部业务服务，持有存储层接口。
type AppService struct {
	repos *repository.Repositories
}

func NewAppService(repos *repository.Repositories) *AppService {
	return &AppService{repos: repos}
}

// uniqueSlug 在给定的唯一性范围内为 base 生成不冲突的 slug。
// 冲突时追加数字后缀（-2、-3 ...）直到唯一。
func uniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	slug := base
	for count := 2; ; count++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
	}
}
