package repository

import "github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre sin distinguir mayúsculas/minúsculas.
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve una página ordenada ascendente por sortBy y el total de registros.
	List(limit, offset int, sortBy string) ([]*entity.Category, int, error)
	Delete(id string) error
	Count() (int64, error)
}
