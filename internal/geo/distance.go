package geo

import "math"

// earthRadiusKm — радиус Земли для формулы гаверсинусов.
const earthRadiusKm = 6371.0

// Distance возвращает расстояние по дуге большого круга между двумя точками
// в километрах (формула гаверсинусов). Координаты в градусах; выход за
// допустимые диапазоны не проверяется — это ответственность вызывающего.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
