package entity

// FrameReport итог обработки одного кадра.
type FrameReport struct {
	Sequence    int         // порядковый номер кадра в сеансе, с 1
	FrameWidth  int         // ширина кадра
	FrameHeight int         // высота кадра
	Detections  []Detection // найденные лица
}

// HasFaces сообщает, найдено ли хотя бы одно лицо
func (r FrameReport) HasFaces() bool {
	return len(r.Detections) > 0
}
