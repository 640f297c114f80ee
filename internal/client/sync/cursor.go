package sync

// PageCursor holds the pagination and filter state shared between
// successive fetch calls. It is owned by the Engine and never global.
type PageCursor struct {
	Is3D       *bool  // nil — без фильтра по 3D
	NamePrefix string // пустая строка — без фильтра по названию
	Offset     int    // сколько записей уже загружено
	Size       int    // размер одной страницы
}

// ReloadLimit возвращает лимит для полной перезагрузки: все уже
// просмотренные страницы плюс одна, начиная с нулевого смещения.
func (c *PageCursor) ReloadLimit() int {
	return c.Offset + c.Size
}

// Reset сбрасывает смещение и устанавливает новые фильтры
func (c *PageCursor) Reset(is3D *bool, namePrefix string) {
	c.Offset = 0
	c.Is3D = is3D
	c.NamePrefix = namePrefix
}

// Advance сдвигает смещение на количество полученных записей
func (c *PageCursor) Advance(n int) {
	c.Offset += n
}
