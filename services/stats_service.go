package services

import (
	"sort"

	"wikicms/models"
	"wikicms/repositories"
)

type StatsService interface {
	GetSiteStatistics() (*models.SiteStatistics, error)
}

type statsService struct {
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewStatsService(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository) StatsService {
	return &statsService{
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *statsService) GetSiteStatistics() (*models.SiteStatistics, error) {
	stats := &models.SiteStatistics{}

	var err error
	if stats.TotalArticles, err = s.articleRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalEdits, err = s.articleRepo.CountEdits(); err != nil {
		return nil, err
	}
	if stats.ProtectedArticles, err = s.articleRepo.CountProtected(); err != nil {
		return nil, err
	}

	domainCounts, err := s.articleRepo.CountByDomain()
	if err != nil {
		return nil, err
	}
	for domain, count := range domainCounts {
		percentage := 0.0
		if stats.TotalArticles > 0 {
			percentage = float64(count) * 100.0 / float64(stats.TotalArticles)
		}
		stats.DomainStats = append(stats.DomainStats, models.DomainStatistics{
			Domain:     domain,
			Count:      count,
			Percentage: percentage,
		})
	}
	sort.Slice(stats.DomainStats, func(i, j int) bool {
		return stats.DomainStats[i].Domain < stats.DomainStats[j].Domain
	})

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	contributors := make([]models.ContributorStatistics, 0, len(users))
	for _, user := range users {
		articleCount, err := s.articleRepo.CountByAuthor(user.ID)
		if err != nil {
			return nil, err
		}
		editCount, err := s.articleRepo.CountEditsByEditor(user.ID)
		if err != nil {
			return nil, err
		}
		contributors = append(contributors, models.ContributorStatistics{
			Username:     user.Username,
			ArticleCount: articleCount,
			EditCount:    editCount,
		})
	}

	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].ArticleCount != contributors[j].ArticleCount {
			return contributors[i].ArticleCount > contributors[j].ArticleCount
		}
		return contributors[i].EditCount > contributors[j].EditCount
	})
	if len(contributors) > 10 {
		contributors = contributors[:10]
	}
	stats.TopContributors = contributors

	return stats, nil
}
