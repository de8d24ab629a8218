package booking

import "github.com/pr-poehali-dev/booking-site-hazard/pkg/txmanager"

// DBExecutor переиспользуем интерфейс из txmanager для работы с БД
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
