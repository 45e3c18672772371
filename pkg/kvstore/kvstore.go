package kvstore

import (
	"github.com/puzpuzpuz/xsync"
)

// Store - потокобезопасное key-value хранилище в памяти.
// Используется ресурсами, которые живут без реляционной БД
// (модальные окна сообществ). Экземпляр создается один раз при старте
// процесса и передается через DI, никаких глобальных словарей.
type Store[V any] struct {
	m *xsync.MapOf[string, V]
}

func New[V any]() *Store[V] {
	return &Store[V]{m: xsync.NewMapOf[V]()}
}

// Put сохраняет значение по ключу (перезаписывает существующее)
func (s *Store[V]) Put(key string, value V) {
	s.m.Store(key, value)
}

// Get возвращает значение и признак его наличия
func (s *Store[V]) Get(key string) (V, bool) {
	return s.m.Load(key)
}

// Delete удаляет значение. Возвращает false, если ключа не было.
func (s *Store[V]) Delete(key string) bool {
	_, existed := s.m.LoadAndDelete(key)
	return existed
}

// Exists проверяет наличие ключа
func (s *Store[V]) Exists(key string) bool {
	_, ok := s.m.Load(key)
	return ok
}

// List возвращает все значения. Порядок обхода не гарантируется
// и может меняться между записями.
func (s *Store[V]) List() []V {
	values := make([]V, 0, s.m.Size())
	s.m.Range(func(_ string, v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Len возвращает количество записей
func (s *Store[V]) Len() int {
	return s.m.Size()
}
