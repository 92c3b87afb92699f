package create_slot

import "time"

// Request модель запроса на публикацию слота
type Request struct {
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота
}

// Response модель ответа с созданным слотом
type Response struct {
	ID        int64     // ID созданного бронирования
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота
	Status    string    // Статус (всегда available)
	CreatedAt time.Time // Время создания
}
