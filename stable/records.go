// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stable

import (
	"github.com/stockparfait/fmp/date"
)

// Quote is a record of the "quote" endpoint.
type Quote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ChangePercentage float64 `json:"changePercentage"`
	Change           float64 `json:"change"`
	Volume           float64 `json:"volume"`
	DayLow           float64 `json:"dayLow"`
	DayHigh          float64 `json:"dayHigh"`
	YearHigh         float64 `json:"yearHigh"`
	YearLow          float64 `json:"yearLow"`
	MarketCap        float64 `json:"marketCap"`
	PriceAvg50       float64 `json:"priceAvg50"`
	PriceAvg200      float64 `json:"priceAvg200"`
	Exchange         string  `json:"exchange"`
	Open             float64 `json:"open"`
	PreviousClose    float64 `json:"previousClose"`
	Timestamp        int64   `json:"timestamp"` // Unix seconds
}

// HistoricalPrice is a daily record of the "historical-price-eod/full"
// endpoint.
type HistoricalPrice struct {
	Symbol        string    `json:"symbol"`
	Date          date.Date `json:"date"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`
	Volume        float64   `json:"volume"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	VWAP          float64   `json:"vwap"`
}

// Profile is a record of the "profile" endpoint.
type Profile struct {
	Symbol            string    `json:"symbol"`
	CompanyName       string    `json:"companyName"`
	Price             float64   `json:"price"`
	MarketCap         float64   `json:"marketCap"`
	Beta              float64   `json:"beta"`
	LastDividend      float64   `json:"lastDividend"`
	Range             string    `json:"range"`
	Volume            float64   `json:"volume"`
	AverageVolume     float64   `json:"averageVolume"`
	Currency          string    `json:"currency"`
	CIK               string    `json:"cik"`
	ISIN              string    `json:"isin"`
	CUSIP             string    `json:"cusip"`
	Exchange          string    `json:"exchange"`
	ExchangeFullName  string    `json:"exchangeFullName"`
	Industry          string    `json:"industry"`
	Sector            string    `json:"sector"`
	Country           string    `json:"country"`
	Website           string    `json:"website"`
	Description       string    `json:"description"`
	CEO               string    `json:"ceo"`
	FullTimeEmployees int       `json:"fullTimeEmployees"`
	IPODate           date.Date `json:"ipoDate"`
	IsETF             bool      `json:"isEtf"`
	IsFund            bool      `json:"isFund"`
	IsADR             bool      `json:"isAdr"`
	IsActivelyTrading bool      `json:"isActivelyTrading"`
}
