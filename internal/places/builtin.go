package places

import "github.com/UnknownOlympus/mesafe/internal/models"

// provinces lists the 81 provinces of Türkiye by plate code, with the coordinates of the city centre.
var provinces = []models.PlaceCoordinate{
	{Name: "Adana", Latitude: 37.0000, Longitude: 35.3213},
	{Name: "Adıyaman", Latitude: 37.7648, Longitude: 38.2786},
	{Name: "Afyonkarahisar", Latitude: 38.7507, Longitude: 30.5567},
	{Name: "Ağrı", Latitude: 39.7191, Longitude: 43.0503},
	{Name: "Amasya", Latitude: 40.6499, Longitude: 35.8353},
	{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
	{Name: "Antalya", Latitude: 36.8969, Longitude: 30.7133},
	{Name: "Artvin", Latitude: 41.1828, Longitude: 41.8183},
	{Name: "Aydın", Latitude: 37.8560, Longitude: 27.8416},
	{Name: "Balıkesir", Latitude: 39.6484, Longitude: 27.8826},
	{Name: "Bilecik", Latitude: 40.1451, Longitude: 29.9799},
	{Name: "Bingöl", Latitude: 38.8847, Longitude: 40.4982},
	{Name: "Bitlis", Latitude: 38.4006, Longitude: 42.1095},
	{Name: "Bolu", Latitude: 40.7392, Longitude: 31.6089},
	{Name: "Burdur", Latitude: 37.7203, Longitude: 30.2908},
	{Name: "Bursa", Latitude: 40.1826, Longitude: 29.0665},
	{Name: "Çanakkale", Latitude: 40.1553, Longitude: 26.4142},
	{Name: "Çankırı", Latitude: 40.6013, Longitude: 33.6134},
	{Name: "Çorum", Latitude: 40.5506, Longitude: 34.9556},
	{Name: "Denizli", Latitude: 37.7765, Longitude: 29.0864},
	{Name: "Diyarbakır", Latitude: 37.9144, Longitude: 40.2306},
	{Name: "Edirne", Latitude: 41.6818, Longitude: 26.5623},
	{Name: "Elazığ", Latitude: 38.6810, Longitude: 39.2264},
	{Name: "Erzincan", Latitude: 39.7500, Longitude: 39.5000},
	{Name: "Erzurum", Latitude: 39.9000, Longitude: 41.2700},
	{Name: "Eskişehir", Latitude: 39.7767, Longitude: 30.5206},
	{Name: "Gaziantep", Latitude: 37.0662, Longitude: 37.3833},
	{Name: "Giresun", Latitude: 40.9128, Longitude: 38.3895},
	{Name: "Gümüşhane", Latitude: 40.4386, Longitude: 39.5086},
	{Name: "Hakkari", Latitude: 37.5833, Longitude: 43.7333},
	{Name: "Hatay", Latitude: 36.4018, Longitude: 36.3498},
	{Name: "Isparta", Latitude: 37.7648, Longitude: 30.5566},
	{Name: "Mersin", Latitude: 36.8000, Longitude: 34.6333},
	{Name: "İstanbul", Latitude: 41.0082, Longitude: 28.9784},
	{Name: "İzmir", Latitude: 38.4192, Longitude: 27.1287},
	{Name: "Kars", Latitude: 40.6167, Longitude: 43.1000},
	{Name: "Kastamonu", Latitude: 41.3887, Longitude: 33.7827},
	{Name: "Kayseri", Latitude: 38.7312, Longitude: 35.4787},
	{Name: "Kırklareli", Latitude: 41.7333, Longitude: 27.2167},
	{Name: "Kırşehir", Latitude: 39.1425, Longitude: 34.1709},
	{Name: "Kocaeli", Latitude: 40.8533, Longitude: 29.8815},
	{Name: "Konya", Latitude: 37.8667, Longitude: 32.4833},
	{Name: "Kütahya", Latitude: 39.4167, Longitude: 29.9833},
	{Name: "Malatya", Latitude: 38.3552, Longitude: 38.3095},
	{Name: "Manisa", Latitude: 38.6191, Longitude: 27.4289},
	{Name: "Kahramanmaraş", Latitude: 37.5858, Longitude: 36.9371},
	{Name: "Mardin", Latitude: 37.3212, Longitude: 40.7245},
	{Name: "Muğla", Latitude: 37.2153, Longitude: 28.3636},
	{Name: "Muş", Latitude: 38.9462, Longitude: 41.7539},
	{Name: "Nevşehir", Latitude: 38.6939, Longitude: 34.6857},
	{Name: "Niğde", Latitude: 37.9667, Longitude: 34.6833},
	{Name: "Ordu", Latitude: 40.9839, Longitude: 37.8764},
	{Name: "Rize", Latitude: 41.0201, Longitude: 40.5234},
	{Name: "Sakarya", Latitude: 40.6940, Longitude: 30.4358},
	{Name: "Samsun", Latitude: 41.2928, Longitude: 36.3313},
	{Name: "Siirt", Latitude: 37.9333, Longitude: 41.9500},
	{Name: "Sinop", Latitude: 42.0231, Longitude: 35.1531},
	{Name: "Sivas", Latitude: 39.7477, Longitude: 37.0179},
	{Name: "Tekirdağ", Latitude: 40.9833, Longitude: 27.5167},
	{Name: "Tokat", Latitude: 40.3167, Longitude: 36.5500},
	{Name: "Trabzon", Latitude: 41.0015, Longitude: 39.7178},
	{Name: "Tunceli", Latitude: 39.1079, Longitude: 39.5401},
	{Name: "Şanlıurfa", Latitude: 37.1591, Longitude: 38.7969},
	{Name: "Uşak", Latitude: 38.6823, Longitude: 29.4082},
	{Name: "Van", Latitude: 38.4891, Longitude: 43.4089},
	{Name: "Yozgat", Latitude: 39.8181, Longitude: 34.8147},
	{Name: "Zonguldak", Latitude: 41.4564, Longitude: 31.7987},
	{Name: "Aksaray", Latitude: 38.3687, Longitude: 34.0370},
	{Name: "Bayburt", Latitude: 40.2552, Longitude: 40.2249},
	{Name: "Karaman", Latitude: 37.1759, Longitude: 33.2287},
	{Name: "Kırıkkale", Latitude: 39.8468, Longitude: 33.5153},
	{Name: "Batman", Latitude: 37.8812, Longitude: 41.1351},
	{Name: "Şırnak", Latitude: 37.4187, Longitude: 42.4918},
	{Name: "Bartın", Latitude: 41.6344, Longitude: 32.3375},
	{Name: "Ardahan", Latitude: 41.1105, Longitude: 42.7022},
	{Name: "Iğdır", Latitude: 39.8880, Longitude: 44.0048},
	{Name: "Yalova", Latitude: 40.6500, Longitude: 29.2667},
	{Name: "Karabük", Latitude: 41.2061, Longitude: 32.6204},
	{Name: "Kilis", Latitude: 36.7184, Longitude: 37.1212},
	{Name: "Osmaniye", Latitude: 37.0742, Longitude: 36.2478},
	{Name: "Düzce", Latitude: 40.8438, Longitude: 31.1565},
}

// majorCities is the short list shown under the calculator on the welcome page.
var majorCities = []models.PlaceCoordinate{
	{Name: "İstanbul", Latitude: 41.0082, Longitude: 28.9784},
	{Name: "Ankara", Latitude: 39.9334, Longitude: 32.8597},
	{Name: "İzmir", Latitude: 38.4192, Longitude: 27.1287},
	{Name: "Bursa", Latitude: 40.1826, Longitude: 29.0665},
	{Name: "Antalya", Latitude: 36.8969, Longitude: 30.7133},
	{Name: "Adana", Latitude: 37.0000, Longitude: 35.3213},
	{Name: "Konya", Latitude: 37.8667, Longitude: 32.4833},
	{Name: "Gaziantep", Latitude: 37.0662, Longitude: 37.3833},
	{Name: "Mersin", Latitude: 36.8000, Longitude: 34.6333},
	{Name: "Diyarbakır", Latitude: 37.9144, Longitude: 40.2306},
	{Name: "Kayseri", Latitude: 38.7312, Longitude: 35.4787},
	{Name: "Eskişehir", Latitude: 39.7767, Longitude: 30.5206},
	{Name: "Trabzon", Latitude: 41.0015, Longitude: 39.7178},
	{Name: "Samsun", Latitude: 41.2928, Longitude: 36.3313},
	{Name: "Malatya", Latitude: 38.3552, Longitude: 38.3095},
}

// Provinces returns the table of all 81 provinces.
func Provinces() *Table {
	return MustTable(provinces)
}

// MajorCities returns the 15 city table.
func MajorCities() *Table {
	return MustTable(majorCities)
}
