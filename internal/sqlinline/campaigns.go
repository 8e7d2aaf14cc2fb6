package sqlinline

const QInsertCampaign = `--sql 7e359dfb-7bee-4244-a44b-c4c61aaa4f44
insert into ad_campaigns(
  id,
  name,
  product_id,
  image_url,
  ad_type,
  prompt,
  target_audience,
  tone,
  purpose,
  status,
  created_at,
  updated_at
) values (
  $1::uuid,
  $2::text,
  $3::text,
  nullif($4::text, ''),
  $5::text,
  $6::text,
  nullif($7::text, ''),
  nullif($8::text, ''),
  nullif($9::text, ''),
  'DRAFT',
  now(),
  now()
) returning id, created_at;
`

const QListCampaigns = `--sql 60f72bcc-eb9d-4389-8429-86bdc8fdf184
select
  id,
  name,
  product_id,
  coalesce(image_url, ''),
  ad_type,
  prompt,
  coalesce(target_audience, ''),
  coalesce(tone, ''),
  coalesce(purpose, ''),
  status,
  created_at
from ad_campaigns
order by created_at desc
limit $1::int offset $2::int;
`
