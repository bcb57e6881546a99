package services

import (
	"strings"

	"github.com/LegendsFan/legendsfan_backend/internal/models"

	"gorm.io/gorm"
)

// fakeUserRepo テスト用のインメモリUserRepository
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrInvalidData
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

// fakeHeroRepo テスト用のインメモリHeroRepository
type fakeHeroRepo struct {
	heroes  map[uint]*models.Hero
	nextID  uint
	created int // FindOrCreateで新規作成された回数
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{heroes: map[uint]*models.Hero{}, nextID: 1}
}

func (f *fakeHeroRepo) FindOrCreate(hero *models.Hero) (*models.Hero, error) {
	name := strings.TrimSpace(hero.HeroName)
	for _, h := range f.heroes {
		if h.HeroName == name {
			return h, nil
		}
	}
	hero.HeroName = name
	hero.ID = f.nextID
	f.nextID++
	f.heroes[hero.ID] = hero
	f.created++
	return hero, nil
}

func (f *fakeHeroRepo) FindByID(id uint) (*models.Hero, error) {
	hero, ok := f.heroes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return hero, nil
}

func (f *fakeHeroRepo) List() ([]models.Hero, error) {
	var heroes []models.Hero
	for _, h := range f.heroes {
		heroes = append(heroes, *h)
	}
	return heroes, nil
}

func (f *fakeHeroRepo) Update(hero *models.Hero) error {
	f.heroes[hero.ID] = hero
	return nil
}

func (f *fakeHeroRepo) Delete(id uint) error {
	delete(f.heroes, id)
	return nil
}

// fakeFavoriteRepo テスト用のインメモリFavoriteRepository
type fakeFavoriteRepo struct {
	favorites map[uint]*models.Favorite
	nextID    uint
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: map[uint]*models.Favorite{}, nextID: 1}
}

func (f *fakeFavoriteRepo) Create(favorite *models.Favorite) error {
	favorite.ID = f.nextID
	f.nextID++
	f.favorites[favorite.ID] = favorite
	return nil
}

func (f *fakeFavoriteRepo) List() ([]models.Favorite, error) {
	var favorites []models.Favorite
	for id := uint(1); id < f.nextID; id++ {
		if fav, ok := f.favorites[id]; ok {
			favorites = append(favorites, *fav)
		}
	}
	return favorites, nil
}

func (f *fakeFavoriteRepo) FindByID(id uint) (*models.Favorite, error) {
	favorite, ok := f.favorites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return favorite, nil
}

func (f *fakeFavoriteRepo) Update(favorite *models.Favorite) error {
	f.favorites[favorite.ID] = favorite
	return nil
}

func (f *fakeFavoriteRepo) Delete(id uint) error {
	delete(f.favorites, id)
	return nil
}
